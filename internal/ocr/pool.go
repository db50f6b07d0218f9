package ocr

import (
	"context"
	"errors"
	"fmt"
)

// Pool shares a fixed set of recognizers between goroutines.
// Each Scan borrows one recognizer for the duration of the call.
type Pool struct {
	idle    chan *Recognizer
	members []*Recognizer
}

// NewPool builds size recognizers with newRecognizer. On failure the ones
// already built are closed.
func NewPool(size int, newRecognizer func() (*Recognizer, error)) (*Pool, error) {
	if size < 1 {
		size = 1
	}

	p := &Pool{idle: make(chan *Recognizer, size)}
	for i := 0; i < size; i++ {
		r, err := newRecognizer()
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to create recognizer %d of %d: %w", i+1, size, err)
		}
		p.members = append(p.members, r)
		p.idle <- r
	}
	return p, nil
}

// Size returns the number of recognizers in the pool.
func (p *Pool) Size() int { return len(p.members) }

// Scan waits for an idle recognizer and scans path with it.
func (p *Pool) Scan(ctx context.Context, path string) (string, error) {
	var r *Recognizer
	select {
	case r = <-p.idle:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { p.idle <- r }()

	return r.Scan(ctx, path)
}

// Close closes every recognizer. Scans must have finished.
func (p *Pool) Close() error {
	var errs []error
	for _, r := range p.members {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.members = nil
	return errors.Join(errs...)
}
