package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanghongseok1599/blogbooster/internal/config"
	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/extract"
	"github.com/yanghongseok1599/blogbooster/internal/feed"
	"github.com/yanghongseok1599/blogbooster/internal/report"
	"github.com/yanghongseok1599/blogbooster/internal/rewrite"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
	"github.com/yanghongseok1599/blogbooster/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "blogbooster",
	Short:   "Naver blog SEO analyzer",
	Long:    "Blogbooster scores Naver blog posts against search exposure rules and suggests concrete improvements.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			if configPath != "" {
				return err
			}
			// No config file anywhere: run on built-in defaults.
			cfg = config.Default()
			return nil
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("blogbooster", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/blogbooster/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to configure tracked blogs, keyword, and LLM provider.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		fmt.Printf("Database: %s\n\n", db.Path())
		fmt.Println("Posts:")
		fmt.Printf("  Collected: %d\n", stats.TotalPosts)
		fmt.Println("\nAnalyses:")
		fmt.Printf("  Total: %d\n", stats.TotalAnalyses)
		fmt.Printf("  Average score: %d\n", stats.AverageScore)
		fmt.Printf("  Best score: %d\n", stats.BestScore)
		fmt.Println("\nRewrites:")
		fmt.Printf("  Drafts: %d\n", stats.Rewrites)
		fmt.Println("\nRewrite provider:")
		fmt.Printf("  %s (%s)\n", cfg.Rewrite.Provider, cfg.Rewrite.Model)
		return nil
	},
}

// --- analyze command ---

var (
	analyzeURL     string
	analyzeTitle   string
	analyzeKeyword string
	analyzeJSON    bool
	analyzeSave    bool
	analyzeReport  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a blog post from a URL, file, or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := loadPost(args)
		if err != nil {
			return err
		}

		keyword := analyzeKeyword
		if keyword == "" {
			keyword = cfg.Keyword
		}

		input := post.Input(keyword)
		result := seo.Analyze(input)
		suggestions := seo.Suggestions(result)

		if analyzeSave {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := saveAnalysis(db, post, input, result)
			if err != nil {
				return fmt.Errorf("saving analysis: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Saved as analysis %d\n", id)
		}

		switch {
		case analyzeJSON:
			out := struct {
				Result      seo.Result       `json:"result"`
				Suggestions []seo.Suggestion `json:"suggestions"`
			}{result, suggestions}
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		case analyzeReport:
			fmt.Println(report.Compose(post.Title, &result, suggestions))
		default:
			printResult(post.Title, result, suggestions)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "Fetch the post from this URL")
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Post title (file/stdin input only)")
	analyzeCmd.Flags().StringVarP(&analyzeKeyword, "keyword", "k", "", "Main keyword (auto-detected when empty)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store the post and analysis in the database")
	analyzeCmd.Flags().BoolVar(&analyzeReport, "report", false, "Print a markdown report")
}

func loadPost(args []string) (*extract.Post, error) {
	if analyzeURL != "" {
		fetcher := extract.NewFetcher(0)
		post, err := fetcher.Fetch(analyzeURL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", analyzeURL, err)
		}
		return post, nil
	}

	var text []byte
	var err error
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	if strings.TrimSpace(string(text)) == "" {
		return nil, fmt.Errorf("no post content; pass a file, --url, or pipe text on stdin")
	}
	return extract.FromText(analyzeTitle, string(text)), nil
}

func printResult(title string, result seo.Result, suggestions []seo.Suggestion) {
	if title != "" {
		fmt.Println(title)
	}
	fmt.Printf("점수: %d/%d  등급: %s\n", result.Score, result.MaxScore, result.Grade)
	fmt.Println(result.GradeDescription)
	if result.Keyword != "" {
		fmt.Printf("키워드: %s\n", result.Keyword)
	}

	fmt.Println("\n항목별 점수:")
	for _, f := range result.Details {
		marker := " "
		switch f.Status {
		case seo.StatusGood:
			marker = "+"
		case seo.StatusWarn:
			marker = "!"
		case seo.StatusBad:
			marker = "x"
		}
		fmt.Printf("  [%s] %-8s %3d/%d  %s\n", marker, f.Item, f.Score, f.Max, f.Hint)
	}

	if len(suggestions) > 0 {
		fmt.Println("\n개선 제안:")
		for _, s := range suggestions {
			fmt.Printf("  (%s) %s: %s\n", s.Priority, s.Category, s.Text)
		}
	}
}

// --- feed command ---

var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed [blog-id-or-rss-url]",
	Short: "Analyze recent posts from an RSS feed or the configured blogs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var feeds []config.Blog
		if len(args) == 1 {
			feeds = []config.Blog{{RSS: feed.NaverFeedURL(args[0])}}
		} else {
			feeds = cfg.Blogs
		}
		if len(feeds) == 0 {
			return fmt.Errorf("no feeds; pass a blog ID or configure blogs in config.yaml")
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		parser := feed.NewParser()
		fetcher := extract.NewFetcher(0)

		analyzed := 0
		for _, blog := range feeds {
			entries, err := parser.Parse(blog.RSS, feedLimit)
			if err != nil {
				log.Printf("Parsing feed %s: %v", blog.RSS, err)
				continue
			}

			for _, entry := range entries {
				post, err := fetcher.Fetch(entry.URL)
				if err != nil {
					log.Printf("Fetching %s: %v", entry.URL, err)
					continue
				}
				if post.Title == "" {
					post.Title = entry.Title
				}

				input := post.Input(cfg.Keyword)
				result := seo.Analyze(input)

				id, err := savePostFromFeed(db, post, input, result, entry, blog)
				if err != nil {
					log.Printf("Saving %s: %v", entry.URL, err)
					continue
				}
				analyzed++
				fmt.Printf("[%s] %3d/%d  %s  (analysis %d)\n",
					result.Grade, result.Score, result.MaxScore, post.Title, id)
			}
		}

		fmt.Printf("\nAnalyzed %d post(s).\n", analyzed)
		return nil
	},
}

func init() {
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 10, "Posts per feed")
}

func savePostFromFeed(db *database.DB, post *extract.Post, input seo.Input, result seo.Result, entry feed.Entry, blog config.Blog) (int64, error) {
	source := blog.Name
	if source == "" {
		source = entry.Source
	}
	var sourcePtr *string
	if source != "" {
		sourcePtr = &source
	}

	var url, keyword *string
	if post.URL != "" {
		url = &post.URL
	}
	if input.Keyword != "" {
		keyword = &input.Keyword
	}

	postID, err := db.InsertPost(url, post.Title, post.Text, sourcePtr, keyword)
	if err != nil {
		return 0, err
	}

	details, err := json.Marshal(result.Details)
	if err != nil {
		return 0, err
	}
	return db.InsertAnalysis(postID, result.Score, string(result.Grade), keyword, string(details))
}

// --- history command ---

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := db.GetRecentAnalyses(historyLimit)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No analyses yet. Run 'blogbooster analyze --save' first.")
			return nil
		}

		// Delta against the previous analysis of the same post, within
		// the listed window.
		prev := make(map[int64]int)
		deltas := make(map[int64]int)
		for i := len(rows) - 1; i >= 0; i-- {
			r := rows[i]
			if p, ok := prev[r.PostID]; ok {
				deltas[r.ID] = r.Score - p
			}
			prev[r.PostID] = r.Score
		}

		for _, r := range rows {
			fmt.Printf("[%d] %s %3d", r.ID, r.Grade, r.Score)
			if d, ok := deltas[r.ID]; ok {
				fmt.Printf(" (%+d)", d)
			}
			fmt.Printf("  %s", r.Title)
			if r.Keyword != nil && *r.Keyword != "" {
				fmt.Printf("  (%s)", *r.Keyword)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of analyses to show")
}

// --- rewrite command ---

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [analysis-id]",
	Short: "Generate an improved draft for a stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid analysis ID: %s", args[0])
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		provider := rewrite.CreateProvider(
			cfg.Rewrite.Provider,
			cfg.Rewrite.Model,
			cfg.Rewrite.OllamaURL,
			cfg.Rewrite.OpenAIModel,
			cfg.Rewrite.APIKeyEnv,
		)
		if provider == nil {
			return fmt.Errorf("no LLM provider available")
		}

		r := rewrite.New(db, provider, cfg.Rewrite.MaxTokens)
		draft, err := r.Run(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("# %s\n\n%s\n", draft.Title, draft.Content)
		fmt.Fprintf(os.Stderr, "\nSaved as rewrite %d (%s)\n", draft.ID, draft.Model)
		return nil
	},
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		fmt.Printf("Starting server at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(db, port)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (config default when unset)")
}

func saveAnalysis(db *database.DB, post *extract.Post, input seo.Input, result seo.Result) (int64, error) {
	var url, keyword *string
	if post.URL != "" {
		url = &post.URL
	}
	if input.Keyword != "" {
		keyword = &input.Keyword
	}

	postID, err := db.InsertPost(url, post.Title, post.Text, nil, keyword)
	if err != nil {
		return 0, err
	}

	details, err := json.Marshal(result.Details)
	if err != nil {
		return 0, err
	}
	return db.InsertAnalysis(postID, result.Score, string(result.Grade), keyword, string(details))
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "blogbooster.db")
	return database.Open(dbPath)
}
