package impose

import "strconv"

// chunkByteThreshold is the practical single-document limit of the PDF
// library named in spec.md §4.3 "Chunking" (~1.9 GB).
const chunkByteThreshold = int64(1_900_000_000)

const (
	pagesPerChunkRepeat  = 50
	pagesPerChunkDefault = 100
)

// ChunkPlan describes how a job's sheets are split across output documents.
type ChunkPlan struct {
	SheetsPerChunk int
	TotalChunks    int
}

// PlanChunks implements spec.md §4.3 "Chunking": chunking triggers when the
// product of the input file's byte size and its per-slot replication factor
// exceeds the practical PDF-library ceiling; chunk boundaries always land on
// whole sheets.
func PlanChunks(spec ImpositionSpec, inputFileBytes int64, totalSheets int) ChunkPlan {
	spec = spec.Normalize()

	if totalSheets <= 0 {
		return ChunkPlan{SheetsPerChunk: 0, TotalChunks: 0}
	}

	replicationFactor := int64(spec.Columns * spec.Rows)
	if inputFileBytes*replicationFactor <= chunkByteThreshold {
		return ChunkPlan{SheetsPerChunk: totalSheets, TotalChunks: 1}
	}

	pagesPerChunk := pagesPerChunkDefault
	if spec.ImpositionType == Repeat {
		pagesPerChunk = pagesPerChunkRepeat
	}
	pagesPerSheet := 1
	if spec.Duplex {
		pagesPerSheet = 2
	}

	sheetsPerChunk := pagesPerChunk / pagesPerSheet
	if sheetsPerChunk < 1 {
		sheetsPerChunk = 1
	}

	return ChunkPlan{
		SheetsPerChunk: sheetsPerChunk,
		TotalChunks:    ceilDiv(totalSheets, sheetsPerChunk),
	}
}

// ChunkLabel formats the spec.md §6 "Output file naming" suffix for chunk i
// (0-based) of an n-chunk job. Single-chunk jobs use the bare title.
func ChunkLabel(title string, chunkIndex, totalChunks int) string {
	if totalChunks <= 1 {
		return title + ".pdf"
	}
	return chunkTitle(title, chunkIndex, totalChunks)
}

func chunkTitle(title string, chunkIndex, totalChunks int) string {
	return title + "_part_" + strconv.Itoa(chunkIndex+1) + "_of_" + strconv.Itoa(totalChunks) + ".pdf"
}
