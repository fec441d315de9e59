package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/unbase64/internal/download"
	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/platform"
	"github.com/ytget/unbase64/internal/render"
)

func newDecodeCmd() *cobra.Command {
	var (
		outDir string
		prefix string
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a payload and save it",
		Long: `Decodes base64 from the file (or stdin) and saves HTML, PDF and image payloads to
the output directory. Plain text is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			state := render.PlanPayload(payload)
			if state.Kind == model.KindText {
				_, err := cmd.OutOrStdout().Write(payload.Data)
				return err
			}

			if outDir == "" {
				if outDir, err = platform.GetHomeDownloadsDir(); err != nil {
					return fmt.Errorf("failed to resolve download directory: %w", err)
				}
			}

			svc := download.NewService(outDir, prefix)
			path, err := svc.Save(state.Kind, payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if verify && state.Kind == model.KindPDF {
				pages, err := svc.VerifyPDF(payload.Data)
				printNotices(cmd, []model.Notice{render.LoadResult(pages, err)})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to the Downloads folder)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", download.DefaultPrefix, "file name prefix")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that a PDF payload loads")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file]",
		Short: "Print the detected content kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			state := render.PlanPayload(payload)
			fmt.Fprintln(cmd.OutOrStdout(), state.Kind)
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print the HTML fragment for a payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			state := render.PlanPayload(payload)
			printNotices(cmd, state.Notices)
			if fragment := render.Fragment(state, payload); fragment != "" {
				fmt.Fprintln(cmd.OutOrStdout(), fragment)
			}
			return nil
		},
	}
}
