package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

func uploadCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload, list and download files",
	}

	avatar := &cobra.Command{
		Use:   "avatar <path>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFile(args[0], func(file entities.FileUpload) error {
				res, err := (*a).uploads.UploadAvatar(cmd.Context(), file)
				if err != nil {
					return err
				}
				fmt.Fprintf((*a).out, "Đã tải ảnh đại diện: %s\n", res.URL)
				return nil
			})
		},
	}

	var fileType string
	document := &cobra.Command{
		Use:   "document <path>",
		Short: "Upload a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFile(args[0], func(file entities.FileUpload) error {
				res, err := (*a).uploads.UploadDocument(cmd.Context(), file, entities.FileType(fileType))
				if err != nil {
					return err
				}
				fmt.Fprintf((*a).out, "Đã tải tài liệu %s (%s)\n", res.FileID, res.FileName)
				return nil
			})
		},
	}
	document.Flags().StringVar(&fileType, "type", string(entities.FileTypeDocument), "document type")

	var recordID int64
	record := &cobra.Command{
		Use:   "record <path>",
		Short: "Attach a file to a medical record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFile(args[0], func(file entities.FileUpload) error {
				res, err := (*a).uploads.UploadMedicalRecordFile(cmd.Context(), recordID, file)
				if err != nil {
					return err
				}
				fmt.Fprintf((*a).out, "Đã đính kèm %s vào hồ sơ #%d\n", res.FileID, recordID)
				return nil
			})
		},
	}
	record.Flags().Int64Var(&recordID, "record", 0, "medical record id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List my uploaded files",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := (*a).uploads.ListMine(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable((*a).out, "MÃ", "TÊN", "LOẠI", "KÍCH THƯỚC", "NGÀY TẢI")
			for _, f := range files {
				row(tw, f.FileID, f.FileName, f.Type, f.Size, f.UploadedAt)
			}
			return tw.Flush()
		},
	}

	var outPath string
	download := &cobra.Command{
		Use:   "download <fileId>",
		Short: "Download a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := (*a).uploads.Download(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			target := outPath
			if target == "" {
				target = filepath.Base(blob.FileName)
			}
			if err := os.WriteFile(target, blob.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			fmt.Fprintf((*a).out, "Đã lưu %s (%d bytes)\n", target, len(blob.Data))
			return nil
		},
	}
	download.Flags().StringVarP(&outPath, "out", "o", "", "destination path (defaults to the served file name)")

	remove := &cobra.Command{
		Use:   "delete <fileId>",
		Short: "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).uploads.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf((*a).out, "Đã xóa tệp %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(avatar, document, record, list, download, remove)
	return cmd
}

func withFile(path string, fn func(entities.FileUpload) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(entities.FileUpload{FileName: filepath.Base(path), Content: f})
}
