package source

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"docgraph/domain/core/entities"
	pkgerrors "docgraph/pkg/errors"
)

// FilesystemSource walks a docs directory and produces the document
// descriptors for one run, playing the role the host site-build pipeline
// plays in production. Files are visited in lexical path order so node ids
// are stable across runs.
type FilesystemSource struct {
	root   string
	logger *zap.Logger
}

// NewFilesystemSource creates a source rooted at a docs directory
func NewFilesystemSource(root string, logger *zap.Logger) *FilesystemSource {
	return &FilesystemSource{root: root, logger: logger}
}

// Load reads every markdown file under the root
func (s *FilesystemSource) Load(ctx context.Context) ([]entities.Document, error) {
	var paths []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "walking docs dir %q", s.root)
	}

	sort.Strings(paths)

	docs := make([]entities.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "reading %q", path)
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "relativizing %q", path)
		}
		rel = filepath.ToSlash(rel)

		content := string(raw)
		stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		isIndex := stem == "index"

		docs = append(docs, entities.Document{
			Title:      documentTitle(content, stem),
			SourcePath: rel,
			URL:        destinationURL(rel, isIndex),
			Content:    content,
			IsIndex:    isIndex,
		})
	}

	s.logger.Debug("Documents loaded",
		zap.String("root", s.root),
		zap.Int("count", len(docs)),
	)

	return docs, nil
}

// documentTitle takes the first level-one heading, falling back to the
// filename stem when the document has none.
func documentTitle(content, fallback string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if after, ok := strings.CutPrefix(line, "# "); ok {
			if title := strings.TrimSpace(after); title != "" {
				return title
			}
		}
	}
	return fallback
}

// destinationURL mirrors how a docs-site renderer lays out pretty URLs:
// dir/page.md serves at /dir/page/ and an index file at its directory root.
func destinationURL(rel string, isIndex bool) string {
	dir := strings.TrimSuffix(rel, filepath.Ext(rel))
	if isIndex {
		dir = strings.TrimSuffix(dir, "index")
	}
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return "/"
	}
	return "/" + dir + "/"
}
