package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/unbase64/internal/decode"
	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/ui"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unbase64",
		Short:         "Decode base64 payloads and detect their content type",
		Long:          `unbase64 decodes base64 text, detects whether it holds HTML, a PDF, an image or plain text, and saves or renders the result.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newDecodeCmd(), newClassifyCmd(), newRenderCmd())
	return root
}

// readPayload decodes the base64 text in the named file, or stdin when no file is given
func readPayload(cmd *cobra.Command, args []string) (model.Payload, error) {
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return model.Payload{}, fmt.Errorf("failed to read input: %w", err)
	}

	payload, err := decode.Decode(string(data))
	if err != nil {
		return model.Payload{}, err
	}
	return payload, nil
}

// printNotices writes notices to stderr in English
func printNotices(cmd *cobra.Command, notices []model.Notice) {
	loc := ui.NewLocalization()
	for _, n := range notices {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", n.Severity, loc.GetText(n.Key))
	}
}
