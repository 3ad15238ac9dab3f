package common

// Stats reports counters an Engine accumulates over its lifetime.
type Stats struct {
	WriteCount   int64
	ReadCount    int64
	CompactCount int64

	// BytesWritten is payload bytes accepted via Write (not including
	// record headers or padding).
	BytesWritten int64

	// BytesProgrammed is flash space consumed by programmed records,
	// counting headers, alignment padding (which stays erased) and
	// full-image snapshots written during compaction.
	// BytesProgrammed/BytesWritten approximates write amplification.
	BytesProgrammed int64
}
