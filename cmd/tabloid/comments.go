package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/model"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/repository"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Moderate post comments",
}

var commentsListCmd = &cobra.Command{
	Use:     "list POST_ID",
	Aliases: []string{"ls"},
	Short:   "List a post's comments, newest first",
	Args:    cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		postID, err := parseID(args[0])
		if err != nil {
			return err
		}

		comments, err := repos.Comments.GetCommentsByPost(cmd.Context(), postID)
		if err != nil {
			return storeError(err)
		}
		if len(comments) == 0 {
			fmt.Printf("No comments on post %d\n", postID)
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"ID", "Created", "Author", "Subject"})
		for _, c := range comments {
			table.Append([]string{
				strconv.Itoa(c.ID),
				c.CreateDateTime.Format(time.DateTime),
				authorName(c),
				c.Subject,
			})
		}
		table.Render()
		return nil
	}),
}

var commentsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one comment with its post and author",
	Args:  cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		c, err := repos.Comments.GetCommentByID(cmd.Context(), id)
		if err != nil {
			return storeError(err)
		}
		if c == nil {
			return fmt.Errorf("comment %d not found", id)
		}

		postTitle := fmt.Sprintf("#%d (missing)", c.PostID)
		if c.Post != nil {
			postTitle = fmt.Sprintf("#%d %s", c.Post.ID, c.Post.Title)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.AppendBulk([][]string{
			{"ID", strconv.Itoa(c.ID)},
			{"Post", postTitle},
			{"Author", authorName(*c)},
			{"Created", c.CreateDateTime.Format(time.DateTime)},
			{"Subject", c.Subject},
			{"Content", c.Content},
		})
		table.Render()
		return nil
	}),
}

var commentsDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a comment",
	Args:    cobra.ExactArgs(1),
	RunE: withRepositories(func(cmd *cobra.Command, args []string, repos *repository.Repositories) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := repos.Comments.DeleteComment(cmd.Context(), id); err != nil {
			return storeError(err)
		}
		fmt.Printf("Deleted comment %d\n", id)
		return nil
	}),
}

func authorName(c model.Comment) string {
	if c.UserProfile == nil {
		return fmt.Sprintf("#%d (missing)", c.UserProfileID)
	}
	return fmt.Sprintf("%s (%s)", c.UserProfile.FullName(), c.UserProfile.DisplayName)
}

func init() {
	commentsCmd.AddCommand(commentsListCmd, commentsShowCmd, commentsDeleteCmd)
	rootCmd.AddCommand(commentsCmd)
}
