package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/model"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/repository"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Manage post categories",
}

var categoriesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List categories by name",
	Args:    cobra.NoArgs,
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		categories, err := repos.Categories.GetAll(cmd.Context())
		if err != nil {
			return storeError(err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"ID", "Name"})
		for _, c := range categories {
			table.Append([]string{strconv.Itoa(c.ID), c.Name})
		}
		table.Render()
		return nil
	}),
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		category := &model.Category{Name: args[0]}
		if err := repos.Categories.Add(cmd.Context(), category); err != nil {
			return storeError(err)
		}
		fmt.Printf("Added category %q with id %d\n", category.Name, category.ID)
		return nil
	}),
}

var categoriesRenameCmd = &cobra.Command{
	Use:   "rename ID NAME",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		existing, err := repos.Categories.GetCategoryByID(cmd.Context(), id)
		if err != nil {
			return storeError(err)
		}
		if existing == nil {
			return fmt.Errorf("category %d not found", id)
		}

		if err := repos.Categories.Update(cmd.Context(), model.Category{ID: id, Name: args[1]}); err != nil {
			return storeError(err)
		}
		fmt.Printf("Renamed category %q to %q\n", existing.Name, args[1])
		return nil
	}),
}

var categoriesDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a category that no post uses",
	Args:    cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := repos.Categories.Delete(cmd.Context(), id); err != nil {
			return storeError(err)
		}
		fmt.Printf("Deleted category %d\n", id)
		return nil
	}),
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRenameCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
