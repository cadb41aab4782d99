package locker

import "github.com/gofrs/flock"

// FLock is a Locker backed by an advisory file lock (flock(2) on unix).
type FLock struct {
	flock *flock.Flock
}

// NewFLock returns a FLock without a path. Use New to get a usable locker.
func NewFLock() *FLock {
	return &FLock{}
}

func (l *FLock) New(path string) Locker {
	return &FLock{flock: flock.New(path)}
}

func (l *FLock) Lock() error {
	return l.flock.Lock()
}

func (l *FLock) TryLock() (bool, error) {
	return l.flock.TryLock()
}

func (l *FLock) Unlock() error {
	return l.flock.Unlock()
}

func (l *FLock) Locked() bool {
	return l.flock.Locked()
}
