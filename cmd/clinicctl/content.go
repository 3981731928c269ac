package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

func blogsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "Manage blog articles",
	}

	var mine bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List blog articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				blogs []entities.Blog
				err   error
			)
			if mine {
				blogs, err = (*a).blogs.ListByStaff(cmd.Context(), 0)
			} else {
				blogs, err = (*a).blogs.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printBlogs((*a).out, blogs)
		},
	}
	list.Flags().BoolVar(&mine, "mine", false, "only articles written by the signed-in staff member")

	search := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search blog articles by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blogs, err := (*a).blogs.SearchByTitle(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printBlogs((*a).out, blogs)
		},
	}

	var req entities.BlogRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Publish a blog article",
		RunE: func(cmd *cobra.Command, args []string) error {
			blog, err := (*a).blogs.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf((*a).out, "Đã đăng bài viết #%d: %s\n", blog.BlogID, blog.Title)
			return nil
		},
	}
	create.Flags().StringVar(&req.Title, "title", "", "article title")
	create.Flags().StringVar(&req.Content, "content", "", "article body")
	create.Flags().StringVar(&req.Image, "image", "", "cover image URL")
	create.Flags().Int64Var(&req.StaffID, "staff", 0, "author staff id (defaults to the signed-in user)")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := (*a).blogs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf((*a).out, "Đã xóa bài viết #%d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, search, create, remove)
	return cmd
}

func educationCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "education",
		Aliases: []string{"edu"},
		Short:   "Manage education content",
	}

	var keyword string
	list := &cobra.Command{
		Use:   "list",
		Short: "List education content",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				items []entities.EducationContent
				err   error
			)
			if keyword != "" {
				items, err = (*a).education.SearchByTitle(cmd.Context(), keyword)
			} else {
				items, err = (*a).education.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printEducation((*a).out, items)
		},
	}
	list.Flags().StringVar(&keyword, "search", "", "only content whose title matches")

	var req entities.EducationContentRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Publish education content",
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := (*a).education.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf((*a).out, "Đã tạo nội dung #%d: %s\n", item.PostID, item.Title)
			return nil
		},
	}
	create.Flags().StringVar(&req.Title, "title", "", "content title")
	create.Flags().StringVar(&req.Content, "content", "", "content body")
	create.Flags().StringVar(&req.Image, "image", "", "cover image URL")
	create.Flags().Int64Var(&req.StaffID, "staff", 0, "author staff id (defaults to the signed-in user)")

	cmd.AddCommand(list, create)
	return cmd
}
