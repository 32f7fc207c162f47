/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/memobox-be/types"
)

// uploadDocumentCmd represents the uploadDocument command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a file to a running server",
	Long:  `Uploads a local file to a running memobox server as a file document.`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		filePath, _ := cmd.Flags().GetString("file")
		tags, _ := cmd.Flags().GetStringArray("tags")

		if filePath == "" && len(args) > 0 {
			filePath = args[0]
		}
		if filePath == "" {
			log.Fatal("file is required")
		}

		src, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("Failed to open file: %v", err)
		}
		defer src.Close()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}
		if _, err := io.Copy(part, src); err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
		if len(tags) > 0 {
			tagsJSON, err := json.Marshal(tags)
			if err != nil {
				log.Fatalf("Failed to encode tags: %v", err)
			}
			writer.WriteField("containerTags", string(tagsJSON))
		}
		if err := writer.Close(); err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}

		resp, err := http.Post(serverURL+"/documents/file", writer.FormDataContentType(), &buf)
		if err != nil {
			log.Fatalf("Failed to upload file: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Server returned %s", resp.Status)
		}

		var doc types.Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			log.Fatalf("Failed to decode response: %v", err)
		}
		fmt.Printf("Uploaded %s as document %s\n", doc.Title, doc.ID)
		if localPath, ok := doc.Metadata["localPath"].(string); ok {
			fmt.Println("Stored at", localPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringP("file", "f", "", "Path to the file to upload")
	uploadDocumentCmd.Flags().StringArrayP("tags", "g", []string{}, "Container tags for the document")
}
