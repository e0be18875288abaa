package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v2"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Fetch the pipeline stats snapshot from a running instance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "jq",
				Aliases: []string{"q"},
				Usage:   "jq expression applied to the snapshot before printing (e.g. '.count_confirmed')",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout",
				Value: 5 * time.Second,
			},
		},
		Action: func(c *cli.Context) error {
			serverURL := c.String("server-url")
			if serverURL == "" {
				return fmt.Errorf("server-url is required (set SERVER_URL env var or use --server-url)")
			}

			// Compile the jq expression before hitting the network so a
			// bad filter fails fast.
			var code *gojq.Code
			if expr := c.String("jq"); expr != "" {
				query, err := gojq.Parse(expr)
				if err != nil {
					return fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
				}
				code, err = gojq.Compile(query)
				if err != nil {
					return fmt.Errorf("failed to compile jq expression %q: %w", expr, err)
				}
			}

			client := &http.Client{
				Timeout: c.Duration("timeout"),
			}

			resp, err := client.Get(serverURL + "/stats")
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server returned status %d", resp.StatusCode)
			}

			var snapshot interface{}
			if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
				return fmt.Errorf("failed to decode stats response: %w", err)
			}

			if code == nil {
				data, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal snapshot: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			iter := code.Run(snapshot)
			for {
				v, ok := iter.Next()
				if !ok {
					break
				}
				if err, isErr := v.(error); isErr {
					return fmt.Errorf("jq evaluation failed: %w", err)
				}
				data, err := json.Marshal(v)
				if err != nil {
					return fmt.Errorf("failed to marshal jq result: %w", err)
				}
				fmt.Println(string(data))
			}
			return nil
		},
	}
}
