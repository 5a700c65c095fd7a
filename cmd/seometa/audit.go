package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cartbatterydepot/seometa"
	"github.com/cartbatterydepot/seometa/internal/output"
)

type auditOptions struct {
	path    string
	timeout time.Duration
}

func newAuditCmd(c *cli) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit <file|url>",
		Short: "Compare a page's head tags with the expected tags",
		Long: `audit reads an HTML document from a file or an http(s) URL, extracts its head
tags and compares them with the tags seometa would render for the page's path.
For URLs the path defaults to the URL's path; for files it defaults to "/".
article:modified_time is checked for presence only.`,
		Example: `  seometa audit https://cartbatterydepot.com/products
  seometa audit dist/contact.html --path /contact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAudit(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "URL path the page is served at")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP timeout when auditing a URL")

	return cmd
}

func (c *cli) runAudit(cmd *cobra.Command, source string, opts *auditOptions) error {
	body, path, err := openSource(cmd.Context(), source, opts)
	if err != nil {
		return err
	}
	defer body.Close()

	got, err := seometa.ExtractTags(body)
	if err != nil {
		return err
	}
	want := c.head.Tags(path, seometa.Overrides{})
	findings := seometa.Audit(want, got)

	out := cmd.OutOrStdout()
	for _, f := range findings {
		fmt.Fprintln(out, f.String())
	}
	output.Debug("audit complete", "source", source, "path", path, "expected", len(want), "found", len(got))
	if len(findings) > 0 {
		return fmt.Errorf("%s: %d audit findings", source, len(findings))
	}
	fmt.Fprintf(out, "%s: ok (%d tags)\n", source, len(want))
	return nil
}

func openSource(ctx context.Context, source string, opts *auditOptions) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, "", fmt.Errorf("opening page: %w", err)
		}
		path := opts.path
		if path == "" {
			path = "/"
		}
		return f, path, nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, "", fmt.Errorf("parsing url: %w", err)
	}
	path := opts.path
	if path == "" {
		path = u.Path
		if path == "" {
			path = "/"
		}
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		cancel()
		return nil, "", fmt.Errorf("building request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, "", fmt.Errorf("fetching %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, "", fmt.Errorf("fetching %s: status %d", source, resp.StatusCode)
	}
	return &cancelBody{ReadCloser: resp.Body, cancel: cancel}, path, nil
}

// cancelBody releases the request context when the body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
