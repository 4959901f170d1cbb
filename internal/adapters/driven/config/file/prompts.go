package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads generation templates from user-editable files on disk.
// Templates are loaded from a configurable directory with fallback to
// embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. This makes testing easier and avoids
// unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// defaultPrompts contains embedded default templates.
// These are used when user files don't exist and as the initial content for
// new files. The course_system template takes five fmt placeholders: course
// name, learner profile, target behavior, duration, tone.
//
//nolint:lll // Template content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptCourseSystem: `You are an expert combining the roles of instructional designer, visual designer and narrator for e-learning courses.
Produce the course content package in the two parts specified below.

# Course Specification
- **Course theme**: %s
- **Learner profile**: %s
- **Target behavior**: %s
- **Estimated duration**: %s
- **Tone and manner**: %s`,

	driven.PromptCourseTask: `# Your Task
Generate both parts below, in order.

---
## Part 1: Visual Slide Blueprints

For every slide in the course structure, write a visual blueprint in Markdown:

### Unit [unit number]: [unit name]

**Slide [slide number]: [slide title]**
- **Layout**: describe the overall slide composition.
- **Key visual**: specify the central graphic element concretely.
- **On-slide text**: the exact text shown on the slide; beyond the title, keep it to 3-5 short bullet points or keywords.
- **Suggested colors**: propose 2-3 base colors for the slide.

---
## Part 2: Timestamped Narration and Subtitle Script

Produce the narration and subtitles as a Markdown table.

### Script rules
1. **Timing**: assume a narration pace of 150 words per minute (2.5 words per second) and compute start and end times per block from the word count.
2. **Subtitle splitting**: split the full narration into blocks that read naturally; subtitles must fit in 2 lines.
3. **Timestamp format**: MM:SS (for example 00:08, 02:15).

### Output format (Markdown table)

| Slide | Start | End | Subtitle (max 2 lines) | Full narration (spoken style) |
|---|---|---|---|---|`,
}

// NewPromptStore creates a new file-based template store.
// If promptDir is empty, defaults to ~/.coursegen/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".coursegen", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the template for the given name.
// On first call, initialises the template directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to the embedded default if the file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load template %q: %w", name, err)
	}

	// Cache the result (write lock). Double-check to avoid overwriting
	// a concurrent load.
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the template cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Watch starts watching the template directory and invalidates the cache
// whenever a file changes, so edits take effect without a restart.
// Safe to call once; Close stops the watcher.
func (s *PromptStore) Watch() error {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.promptDir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.promptDir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) {
					s.Reload()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are non-fatal; the next Load falls back
				// to a fresh file read anyway.
			case <-s.done:
				return
			}
		}
	}()
	return nil
}

// Close stops the directory watcher, if one was started.
func (s *PromptStore) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	return s.watcher.Close()
}

// Dir returns the template directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the template directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	// Create default template files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default template %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a template from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the templates directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Coursegen Templates

This directory contains the customisable templates coursegen uses when
assembling generation prompts.

## Files

- ` + "`course_system.txt`" + ` - Frames the request: roles and course specification
- ` + "`course_task.txt`" + ` - Slide-design and narration-script instructions

## Customisation

Edit any file to customise the assembled document. Changes take effect on
the next command.

## Format Placeholders

The course_system template uses Go fmt placeholders, in order:
course name, learner profile, target behavior, duration, tone (all ` + "`%s`" + `).

Ensure customised templates keep the placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
