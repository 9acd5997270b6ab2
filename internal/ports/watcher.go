package ports

// Watcher monitors a single text file and reports when its content may have
// changed. Editors often replace a file instead of writing it in place, so the
// adapter watches the parent directory and filters events down to the target.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called with the absolute
	// path of the file after each write, create or rename onto it. The
	// callback may be invoked from any goroutine. Returns an error if the
	// parent directory doesn't exist or permissions are insufficient.
	Watch(filePath string, onChange func(filePath string)) error

	// OnError registers a callback for errors the backend reports after Watch
	// has started (event queue overflow, a lost watch). Watching continues.
	// Call before Watch; a nil callback drops errors.
	OnError(onError func(err error))

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
