// File: utils/constants.go
package utils

// SnapshotCachePrefix is the prefix used for Redis recommendation snapshot keys.
const SnapshotCachePrefix = "rec:snapshot:"
