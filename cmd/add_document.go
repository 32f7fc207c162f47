/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/memobox-be/types"
)

// addDocumentCmd represents the addDocument command
var addDocumentCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a note or link to a running server",
	Long: `Sends a document to a running memobox server. Content starting with
"http" is stored as a link, everything else as a note.`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		content, _ := cmd.Flags().GetString("content")
		tags, _ := cmd.Flags().GetStringArray("tags")

		if content == "" && len(args) > 0 {
			content = strings.Join(args, " ")
		}
		if content == "" {
			log.Fatal("content is required")
		}

		body, err := json.Marshal(types.CreateDocumentRequest{
			Content:       content,
			ContainerTags: tags,
		})
		if err != nil {
			log.Fatalf("Failed to encode request: %v", err)
		}

		resp, err := http.Post(serverURL+"/documents", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to add document: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Server returned %s", resp.Status)
		}

		var doc types.Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			log.Fatalf("Failed to decode response: %v", err)
		}
		fmt.Printf("Created %s document %s\n", doc.Type, doc.ID)
	},
}

func init() {
	rootCmd.AddCommand(addDocumentCmd)

	addDocumentCmd.Flags().String("content", "", "Document content (may also be passed as arguments)")
	addDocumentCmd.Flags().StringArrayP("tags", "g", []string{}, "Container tags for the document")
}
