package snapshot

import (
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/arthur-debert/bumv/pkg/types"
)

// ignoreFiles are the per-directory pattern files honored when
// Options.RespectIgnores is set, mirroring standard gitignore tooling.
var ignoreFiles = []string{".gitignore", ".ignore"}

// scopedMatcher applies an ignore file's patterns to paths below the
// directory it was found in.
type scopedMatcher struct {
	base    string // relative to the walk root, "" for the root itself
	matcher *ignore.GitIgnore
}

func (m scopedMatcher) matches(relPath string, isDir bool) bool {
	scoped := relPath
	if m.base != "" {
		var ok bool
		scoped, ok = strings.CutPrefix(relPath, m.base+string(filepath.Separator))
		if !ok {
			return false
		}
	}
	scoped = filepath.ToSlash(scoped)
	if m.matcher.MatchesPath(scoped) {
		return true
	}
	// Directory patterns like "build/" only match with the trailing slash
	return isDir && m.matcher.MatchesPath(scoped+"/")
}

// walk lists regular files under root, relative to root, sorted.
func walk(fsys types.FS, root string, opts Options) ([]string, error) {
	var paths []string
	if err := walkDir(fsys, root, "", opts, nil, &paths); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func walkDir(fsys types.FS, root, rel string, opts Options, matchers []scopedMatcher, out *[]string) error {
	dir := filepath.Join(root, rel)

	if opts.RespectIgnores {
		for _, name := range ignoreFiles {
			content, err := fsys.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			m := ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
			matchers = append(matchers, scopedMatcher{base: rel, matcher: m})
		}
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if opts.RespectIgnores && strings.HasPrefix(name, ".") {
			continue
		}

		entryRel := filepath.Join(rel, name)
		if opts.RespectIgnores && ignored(matchers, entryRel, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if !opts.Recursive {
				continue
			}
			if err := walkDir(fsys, root, entryRel, opts, matchers, out); err != nil {
				return err
			}
			continue
		}

		// Directories are never snapshot entries, and neither are
		// sockets, devices, or other irregular files.
		if !entry.Type().IsRegular() {
			continue
		}
		*out = append(*out, entryRel)
	}
	return nil
}

func ignored(matchers []scopedMatcher, relPath string, isDir bool) bool {
	for _, m := range matchers {
		if m.matches(relPath, isDir) {
			return true
		}
	}
	return false
}
