package object

// Tree entry modes. The on-disk mode field is octal text; these are the
// decoded values.
const (
	ModeDir        uint32 = 0o040000
	ModeRegular    uint32 = 0o100644
	ModeGroupWrite uint32 = 0o100664
	ModeExecutable uint32 = 0o100755
	ModeSymlink    uint32 = 0o120000
	ModeGitlink    uint32 = 0o160000

	// modeTypeMask selects the object-type bits of a mode.
	modeTypeMask uint32 = 0o170000
)

// IsDirMode reports whether mode names a directory entry.
func IsDirMode(mode uint32) bool {
	return mode&modeTypeMask == ModeDir
}

// IsRegularMode reports whether mode names a regular file entry,
// whatever its permission bits.
func IsRegularMode(mode uint32) bool {
	return mode&modeTypeMask == 0o100000
}

// IsSymlinkMode reports whether mode names a symbolic link entry.
func IsSymlinkMode(mode uint32) bool {
	return mode&modeTypeMask == 0o120000
}

// IsGitlinkMode reports whether mode names a submodule link entry.
func IsGitlinkMode(mode uint32) bool {
	return mode&modeTypeMask == ModeGitlink
}
