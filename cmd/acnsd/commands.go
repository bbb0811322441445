package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acns/backend/internal/config"
	"github.com/acns/backend/internal/storage"
)

// --- seed ---

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the default site content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		if err := store.Seed(); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}

		printSuccess("Database seeded")
		return nil
	},
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send a chat message to the assistant",
	Long: `Send a chat message to the assistant.

Examples:
  acnsd chat "What services do you offer?"
  acnsd chat --session anon-1234 "Tell me more about the first one"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := cmd.Flags().GetString("session")
		message := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/ai/chat", map[string]any{
			"message":   message,
			"sessionId": session,
		})
		if err != nil {
			return err
		}

		var result struct {
			Reply     string `json:"reply"`
			SessionID string `json:"sessionId"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, result.Reply)
		printStatus("Session", "%s", result.SessionID)
		return nil
	},
}

func init() {
	chatCmd.Flags().String("session", "", "session ID to continue a conversation")
}

// --- search ---

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the website content",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/ai/search?q="+url.QueryEscape(query))
		if err != nil {
			return err
		}

		type hit struct {
			Type  string `json:"type"`
			Title string `json:"title"`
			URL   string `json:"url"`
		}
		var result struct {
			Results struct {
				Services []hit `json:"services"`
				Blogs    []hit `json:"blogs"`
				Products []hit `json:"products"`
				Jobs     []hit `json:"jobs"`
			} `json:"results"`
			TotalResults int     `json:"totalResults"`
			Summary      *string `json:"aiSummary"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if result.TotalResults == 0 {
			printWarning("No results for %q", query)
			return nil
		}
		for _, group := range [][]hit{result.Results.Services, result.Results.Blogs, result.Results.Products, result.Results.Jobs} {
			for _, h := range group {
				fmt.Fprintf(os.Stdout, "[%s] %s\n    %s\n", h.Type, h.Title, h.URL)
			}
		}
		if result.Summary != nil {
			fmt.Fprintf(os.Stdout, "\n%s\n", *result.Summary)
		}
		return nil
	},
}

// --- contacts ---

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List contact submissions (requires admin token)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if client.token == "" {
			return fmt.Errorf("ACNS_ADMIN_TOKEN is not set")
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/admin/contacts?limit=%d", limit))
		if err != nil {
			return err
		}

		var result struct {
			Contacts []json.RawMessage `json:"contacts"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		if len(result.Contacts) == 0 {
			printWarning("No contact submissions")
			return nil
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Contacts)
	},
}

func init() {
	contactsCmd.Flags().Int("limit", 20, "maximum number of submissions to show")
}
