package fileutil

import "os"

// OwnerReadWrite is the file permission mode for cached document files,
// which may describe internal APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerFullAccess is the directory permission mode for the cache directory.
const OwnerFullAccess os.FileMode = 0o700
