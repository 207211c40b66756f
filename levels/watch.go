package levels

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a level file must stay unchanged before it is
// reported.
const DefaultSettle = 150 * time.Millisecond

// Watcher reports level names whose JSON changed on disk. Editors often save
// in several writes; a name is sent once the file has been quiet for the
// settle period.
type Watcher struct {
	fs      *fsnotify.Watcher
	settle  time.Duration
	Changed chan string
	Errors  chan error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewWatcher watches dir for level writes using DefaultSettle.
func NewWatcher(dir string) (*Watcher, error) {
	return NewWatcherSettle(dir, DefaultSettle)
}

func NewWatcherSettle(dir string, settle time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	w := &Watcher{
		fs:      fw,
		settle:  settle,
		Changed: make(chan string, 8),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching and waits for the reporting goroutine. Changed and
// Errors are closed afterwards.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Changed)
	defer close(w.Errors)

	pending := make(map[string]time.Time)
	flush := time.NewTicker(w.settle / 2)
	defer flush.Stop()

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && isLevelFile(event.Name) {
				pending[cleanLevelName(filepath.Base(event.Name))] = time.Now()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case now := <-flush.C:
			for name, last := range pending {
				if now.Sub(last) < w.settle {
					continue
				}
				delete(pending, name)
				select {
				case w.Changed <- name:
				case <-w.stop:
					return
				}
			}
		}
	}
}

func isLevelFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
