package tmetric

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"weekfold/activity"
)

// Subscriber watches an export file and re-parses it on every write, so a
// fresh export dropped in place immediately reprocesses.
type Subscriber struct {
	filePath string
	lastRead time.Time
	mu       sync.Mutex
	receiver activity.Receiver
}

func NewSubscriber(filePath string) (*Subscriber, error) {
	return &Subscriber{filePath: filePath}, nil
}

func (s *Subscriber) Subscribe(receiver activity.Receiver) error {
	s.receiver = receiver
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	go s.watchResponder(watcher)

	err = watcher.Add(s.filePath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	// Block main goroutine forever.
	// TODO: implement proper shutdown handling
	<-make(chan struct{})
	return nil
}

func (s *Subscriber) watchResponder(watcher *fsnotify.Watcher) {

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Println("watcher.Events is not okay.")
				return
			}
			if event.Has(fsnotify.Write) {
				err := s.reactToFileWrite(event.Name)
				if err != nil {
					log.Printf("reactToFileWrite: %s", err.Error())
					return
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				log.Println("watcher.Errors is not okay.")
				return
			}
			log.Println("watcher.Errors: ", err)
		}
	}
}

func (s *Subscriber) reactToFileWrite(filepath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timeElapsed := time.Since(s.lastRead)
	if timeElapsed < time.Second { // react at most once per second
		return nil
	}
	s.lastRead = time.Now()

	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	parser := Parser{}
	batch, err := parser.Parse(bytes.NewReader(b))
	if err != nil {
		if errors.Is(err, ErrNoActivities) {
			// a half-written export can look empty; wait for the next write
			log.Printf("export has no usable rows yet: %s", filepath)
			return nil
		}
		return fmt.Errorf("parser.Parse: %w", err)
	}

	err = s.receiver.Receive(batch)
	if err != nil {
		return fmt.Errorf("error from activity receiver: %w", err)
	}

	return nil
}

// readLoop tries to read the file a lot
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < 100; i++ {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}

		if len(b) == 0 {
			// sometimes we get an empty file, probably because the file is being written to
			time.Sleep(time.Millisecond * 100)
			continue
		}

		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}
