package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/jsonc"
	"github.com/urfave/cli/v3"

	"brewfather-mcp/internal/ops"
	"brewfather-mcp/internal/tools"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the Brewfather tools over stdio",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "address for the /healthz and /metrics listener (disabled when empty)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			opsErr := make(chan error, 1)
			addr := cmd.String("metrics-addr")
			if addr == "" {
				addr = a.cfg.Ops.MetricsAddr
			}
			if addr != "" {
				router := ops.NewRouter(a.cfg.Ops, a.registry, tools.Version, a.logger)
				go func() {
					opsErr <- ops.Serve(ctx, addr, router, a.logger)
				}()
			}

			errLog := a.logger.WriterLevel(logrus.ErrorLevel)
			defer errLog.Close()

			stdio := server.NewStdioServer(tools.NewServer(a.handler))
			stdio.SetErrorLogger(log.New(errLog, "", 0))

			a.logger.Info("serving tools over stdio")
			err = stdio.Listen(ctx, os.Stdin, os.Stdout)
			cancel()
			if addr != "" {
				if oerr := <-opsErr; oerr != nil {
					a.logger.WithError(oerr).Error("ops listener failed")
				}
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func toolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List the available tools",
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()
			return listTools(cmd.Root().Writer, a.handler)
		},
	}
}

func listTools(w io.Writer, h *tools.Handler) error {
	for _, st := range h.ServerTools() {
		if _, err := fmt.Fprintf(w, "%-30s %s\n", st.Tool.Name, st.Tool.Description); err != nil {
			return err
		}
	}
	return nil
}

func toolCmd() *cli.Command {
	return &cli.Command{
		Name:      "tool",
		Usage:     "Invoke one tool and print its output",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "args",
				Usage: "tool arguments as a JSON object; comments and trailing commas are allowed",
			},
			&cli.StringFlag{
				Name:  "args-file",
				Usage: "read the tool arguments from a JSON file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return errors.New("tool name is required")
			}
			args, err := toolArgs(cmd.String("args"), cmd.String("args-file"))
			if err != nil {
				return err
			}

			a, err := newApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			return runTool(ctx, cmd.Root().Writer, a.handler, name, args)
		},
	}
}

// toolArgs parses inline or file arguments. Both empty means no arguments.
func toolArgs(inline, path string) (map[string]any, error) {
	if inline != "" && path != "" {
		return nil, errors.New("use either --args or --args-file, not both")
	}

	data := []byte(inline)
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &args); err != nil {
		return nil, fmt.Errorf("tool arguments must be a JSON object: %w", err)
	}
	return args, nil
}

func runTool(ctx context.Context, w io.Writer, h *tools.Handler, name string, args map[string]any) error {
	for _, st := range h.ServerTools() {
		if st.Tool.Name != name {
			continue
		}
		var req mcp.CallToolRequest
		req.Params.Name = name
		req.Params.Arguments = args

		res, err := st.Handler(ctx, req)
		if err != nil {
			return err
		}
		for _, c := range res.Content {
			if text, ok := c.(mcp.TextContent); ok {
				if _, err := fmt.Fprintln(w, text.Text); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return fmt.Errorf("unknown tool %q; run 'brewfatherd tools' for the list", name)
}
