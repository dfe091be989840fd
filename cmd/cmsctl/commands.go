package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/config"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/content"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/strapi"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/wordpress"
)

const (
	backendWordPress = "wordpress"
	backendStrapi    = "strapi"
)

// options holds the flags shared by every subcommand
type options struct {
	backend        string
	endpoint       string
	timeout        time.Duration
	raw            bool
	includeContent bool
	query          content.ListQuery
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "cmsctl",
		Short:         "Read content from a headless CMS",
		Long:          "Fetch posts, pages and custom image fields from a WordPress REST API or an ACF-enabled CMS and print template-ready JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.backend != backendWordPress && opts.backend != backendStrapi {
				return fmt.Errorf("unknown backend %q (want wordpress or strapi)", opts.backend)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.backend, "backend", "b", backendWordPress, "Backend: wordpress (slug lookups) or strapi (id lookups)")
	flags.StringVarP(&opts.endpoint, "endpoint", "e", "", "REST root, e.g. https://example.com/wp-json (default from CMS_WORDPRESS_URL or CMS_STRAPI_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Request timeout (default from CMS_TIMEOUT)")
	flags.BoolVar(&opts.raw, "raw", false, "Print compact JSON without color")

	listFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&opts.query.Search, "search", "s", "", "Full-text search filter")
		cmd.Flags().IntVarP(&opts.query.PerPage, "per-page", "n", 0, "Records per request (1-100)")
		cmd.Flags().IntVarP(&opts.query.Page, "page", "p", 0, "Result page")
		cmd.Flags().StringVar(&opts.query.OrderBy, "orderby", "", "Sort field")
		cmd.Flags().StringVar(&opts.query.Order, "order", "", "Sort direction: asc or desc")
		cmd.Flags().StringToStringVar(&opts.query.Extra, "param", nil, "Extra query parameter as key=value (repeatable)")
	}
	singleFlags := func(cmd *cobra.Command) {
		cmd.Flags().BoolVarP(&opts.includeContent, "content", "c", false, "Include rendered HTML content")
	}

	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.reader()
			if err != nil {
				return err
			}
			posts := r.posts(cmd.Context(), opts.query.Params())
			return opts.print(cmd.OutOrStdout(), content.SummarizePosts(posts))
		},
	}
	listFlags(postsCmd)

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "List pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.reader()
			if err != nil {
				return err
			}
			pages := r.pages(cmd.Context(), opts.query.Params())
			return opts.print(cmd.OutOrStdout(), content.SummarizePages(pages))
		},
	}
	listFlags(pagesCmd)

	postCmd := &cobra.Command{
		Use:   "post <slug|id>",
		Short: "Get one post by slug (wordpress) or id (strapi)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.reader()
			if err != nil {
				return err
			}
			post, err := r.post(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if post == nil {
				return notFound(cmd, "post", args[0])
			}
			return opts.print(cmd.OutOrStdout(), content.SummarizePost(post, opts.includeContent))
		},
	}
	singleFlags(postCmd)

	pageCmd := &cobra.Command{
		Use:   "page <slug|id>",
		Short: "Get one page by slug (wordpress) or id (strapi)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.reader()
			if err != nil {
				return err
			}
			page, err := r.page(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if page == nil {
				return notFound(cmd, "page", args[0])
			}
			return opts.print(cmd.OutOrStdout(), content.SummarizePage(page, opts.includeContent))
		},
	}
	singleFlags(pageCmd)

	imageCmd := &cobra.Command{
		Use:   "image <post-id> <field>",
		Short: "Resolve an ACF image field of a post (strapi backend)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.backend != backendStrapi {
				return fmt.Errorf("image requires --backend strapi")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := strapi.ValidateFieldName(args[1]); err != nil {
				return err
			}
			r, err := opts.reader()
			if err != nil {
				return err
			}
			url := r.strapi.GetImage(cmd.Context(), id, args[1])
			if url == "" {
				return notFound(cmd, "image field", args[1])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}

	rootCmd.AddCommand(postsCmd, postCmd, pagesCmd, pageCmd, imageCmd, versionCmd, newEvalsCmd())
	return rootCmd
}

// reader adapts both backends to slug-or-id string keys
type reader struct {
	wp     *wordpress.Client
	strapi *strapi.Client
}

func (opts *options) reader() (*reader, error) {
	overrides := map[string]any{}
	if opts.backend == backendStrapi {
		overrides["strapi_url"] = opts.endpoint
	} else {
		overrides["wordpress_url"] = opts.endpoint
	}
	if opts.timeout > 0 {
		overrides["timeout"] = opts.timeout
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if opts.backend == backendStrapi {
		if cfg.StrapiURL == "" {
			return nil, fmt.Errorf("no strapi endpoint: pass --endpoint or set CMS_STRAPI_URL")
		}
		return &reader{strapi: strapi.NewClient(cfg.StrapiURL,
			strapi.WithLogger(logger),
			strapi.WithTimeout(cfg.Timeout),
			strapi.WithUserAgent(cfg.UserAgent),
		)}, nil
	}

	if cfg.WordPressURL == "" {
		return nil, fmt.Errorf("no wordpress endpoint: pass --endpoint or set CMS_WORDPRESS_URL")
	}
	return &reader{wp: wordpress.NewClient(cfg.WordPressURL,
		wordpress.WithLogger(logger),
		wordpress.WithTimeout(cfg.Timeout),
		wordpress.WithUserAgent(cfg.UserAgent),
	)}, nil
}

func (r *reader) posts(ctx context.Context, params map[string]string) []content.Post {
	if r.strapi != nil {
		return r.strapi.GetPosts(ctx, params)
	}
	return r.wp.GetPosts(ctx, params)
}

func (r *reader) pages(ctx context.Context, params map[string]string) []content.Page {
	if r.strapi != nil {
		return r.strapi.GetPages(ctx, params)
	}
	return r.wp.GetPages(ctx, params)
}

func (r *reader) post(ctx context.Context, key string) (*content.Post, error) {
	if r.strapi != nil {
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		return r.strapi.GetPost(ctx, id), nil
	}
	if err := wordpress.ValidateSlug(key); err != nil {
		return nil, err
	}
	return r.wp.GetPost(ctx, key), nil
}

func (r *reader) page(ctx context.Context, key string) (*content.Page, error) {
	if r.strapi != nil {
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		return r.strapi.GetPage(ctx, id), nil
	}
	if err := wordpress.ValidateSlug(key); err != nil {
		return nil, err
	}
	return r.wp.GetPage(ctx, key), nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	if err := strapi.ValidateID("id", id); err != nil {
		return 0, err
	}
	return id, nil
}

// print writes v as indented JSON, colorized unless --raw is set or color is disabled
func (opts *options) print(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	data := buf.Bytes()
	if opts.raw {
		data = append(pretty.Ugly(data), '\n')
	} else {
		data = pretty.Pretty(data)
		if !color.NoColor {
			data = pretty.Color(data, nil)
		}
	}
	_, err := w.Write(data)
	return err
}

func notFound(cmd *cobra.Command, what, key string) error {
	color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "No %s found for %s\n", what, key)
	return fmt.Errorf("%s %s not found", what, key)
}
