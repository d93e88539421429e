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

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage post tags",
}

var tagsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tags by name",
	Args:    cobra.NoArgs,
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		tags, err := repos.Tags.GetAllTags(cmd.Context())
		if err != nil {
			return storeError(err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"ID", "Name"})
		for _, tag := range tags {
			table.Append([]string{strconv.Itoa(tag.ID), tag.Name})
		}
		table.Render()
		return nil
	}),
}

var tagsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a tag",
	Args:  cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		if err := repos.Tags.Add(cmd.Context(), model.Tag{Name: args[0]}); err != nil {
			return storeError(err)
		}
		fmt.Printf("Added tag %q\n", args[0])
		return nil
	}),
}

var tagsDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a tag",
	Args:    cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := repos.Tags.Delete(cmd.Context(), id); err != nil {
			return storeError(err)
		}
		fmt.Printf("Deleted tag %d\n", id)
		return nil
	}),
}

func init() {
	tagsCmd.AddCommand(tagsListCmd, tagsAddCmd, tagsDeleteCmd)
	rootCmd.AddCommand(tagsCmd)
}
