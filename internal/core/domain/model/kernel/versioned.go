package kernel

// Versioned is implemented by aggregates stored with an optimistic
// concurrency counter. Repositories bump the counter on every write.
type Versioned interface {
	Version() int
	SyncVersion(version int)
}
