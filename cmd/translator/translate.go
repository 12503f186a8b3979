package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Totarae/TranslateApp/internal/app"
	"github.com/Totarae/TranslateApp/internal/client"
	"github.com/Totarae/TranslateApp/internal/config"
	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errNothingToTranslate = errors.New("nothing to translate")

func newTranslateCommand() *cobra.Command {
	v := viper.New()
	var (
		direction string
		serverURL string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate text once and print the slug",
		Long: `Translate text between English and Bangla and print the formatted slug,
the translation and the combined line.

By default MyMemory is called directly; with --server the request goes to a
running "translator serve" instance.`,
		Example: `  translator translate "Hello   World"
  translator translate -d "bn|en" "হ্যালো বিশ্ব"
  translator translate --server http://localhost:8080 "Good morning"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var translate translateFunc
			if serverURL != "" {
				translate = client.New(serverURL, timeout).Translate
			} else {
				cfg, err := config.Load(v)
				if err != nil {
					return err
				}
				svc := app.NewTranslationService(cfg, zap.NewNop())
				translate = func(ctx context.Context, text string, d model.Direction) (*model.TranslateResponse, error) {
					return svc.Translate(ctx, model.TranslateRequest{Text: text, Direction: d})
				}
			}

			state := client.NewState().SetText(strings.Join(args, " "))
			if model.ParseDirection(direction) != state.Direction {
				state = state.Toggle()
			}
			return runTranslate(cmd.Context(), cmd.OutOrStdout(), state, translate)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", string(model.EnToBn), `translation direction: "en|bn" or "bn|en"`)
	cmd.Flags().StringVar(&serverURL, "server", "", "base URL of a running translator server")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout when --server is used")
	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		panic(err)
	}
	return cmd
}

type translateFunc func(ctx context.Context, text string, d model.Direction) (*model.TranslateResponse, error)

// runTranslate проводит состояние через submit -> succeed/fail и печатает результат.
func runTranslate(ctx context.Context, out io.Writer, state client.State, translate translateFunc) error {
	state, ok := state.Submit()
	if !ok {
		return errNothingToTranslate
	}

	res, err := translate(ctx, state.Text, state.Direction)
	if err != nil {
		state = state.Fail()
		fmt.Fprintln(out, state.Result.Combined)
		return err
	}
	state = state.Succeed(*res)

	fmt.Fprintln(out, state.Label())
	fmt.Fprintf(out, "formatted:  %s\n", state.Result.Formatted)
	fmt.Fprintf(out, "translated: %s\n", state.Result.Translated)
	fmt.Fprintf(out, "combined:   %s\n", state.Result.Combined)
	return nil
}
