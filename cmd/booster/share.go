package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-booster/internal/export"
)

var sharePageURL string

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode shareable state links",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode (resume|portfolio) <state.json>",
	Short: "Build a share link carrying the full state",
	Args:  cobra.ExactArgs(2),
	RunE:  runShareEncode,
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <url>",
	Short: "Decode a share link back to state JSON",
	Long:  "Decode the resume query parameter or portfolio fragment from a share link. Corrupt links decode to the default state.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func init() {
	shareEncodeCmd.Flags().StringVar(&sharePageURL, "url", "https://localhost/resume", "Page URL to attach the state to")
	shareCmd.AddCommand(shareEncodeCmd, shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}

func runShareEncode(cmd *cobra.Command, args []string) error {
	kind, path := args[0], args[1]

	switch kind {
	case "resume":
		data, err := readResume(path)
		if err != nil {
			return err
		}
		link, err := export.MakeShareURL(sharePageURL, data)
		if err != nil {
			return err
		}
		cmd.Println(link)
	case "portfolio":
		state, err := readPortfolio(path)
		if err != nil {
			return err
		}
		link, err := export.PortfolioShareURL(sharePageURL, state)
		if err != nil {
			return err
		}
		cmd.Println(link)
	default:
		return fmt.Errorf("unknown state kind %q: want resume or portfolio", kind)
	}
	return nil
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	// Try the resume query parameter first, then the portfolio fragment.
	if data, ok := export.ResumeFromURL(args[0]); ok {
		return printJSON(cmd, data)
	}
	if state, ok := export.PortfolioFromURL(args[0]); ok {
		return printJSON(cmd, state)
	}
	return fmt.Errorf("no decodable state in URL")
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
