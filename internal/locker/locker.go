package locker

// Locker is an interface for locking and unlocking a resource.
type Locker interface {
	// New creates a new locker for the given path. The lock is not acquired.
	New(path string) Locker
	// Lock acquires the lock, blocking until it is available.
	Lock() error
	// TryLock tries to acquire the lock without blocking. It returns true if
	// the lock was acquired.
	TryLock() (bool, error)
	// Unlock releases the lock.
	Unlock() error
	// Locked returns true if the lock is held by this locker.
	Locked() bool
}
