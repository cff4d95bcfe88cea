package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/elysia-edu/essayd/core"
)

// Key prefixes for different data types
const (
	documentPrefix      = "docrec"
	documentDatePrefix  = "docrecd"
	documentOwnerPrefix = "docreco"
	documentIDSeq       = "docrecseq"
	analysisPrefix      = "anarec"
	analysisIDSeq       = "anarecseq"
	embeddingPrefix     = "embrec"
	embeddingIDSeq      = "embrecseq"
	corpusPrefix        = "correc"
	corpusTuplePrefix   = "corcatti"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentDateKey generates a composite key for the submission date index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := documentDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDocumentDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialDocumentDateKey(timestamp time.Time) []byte {
	prefix := documentDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeDocumentOwnerKey generates a composite key for the owner index.
// Format: prefix:ownerID:documentID
func makeDocumentOwnerKey(ownerID, documentID core.ID) []byte {
	prefix := documentOwnerPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for ownerID + 8 bytes for documentID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentID))
	return buf
}

// makePartialDocumentOwnerKey generates a partial key for owner queries.
// Format: prefix:ownerID
func makePartialDocumentOwnerKey(ownerID core.ID) []byte {
	prefix := documentOwnerPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ownerID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	return buf
}

// makeAnalysisKey generates a key for an analysis by its document ID.
// Keying by document makes PutAnalysis a natural upsert.
func makeAnalysisKey(documentID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", analysisPrefix, documentID))
}

// makeEmbeddingKey generates a key for an embedding by its document ID.
// Keying by document makes UpsertEmbedding a natural upsert.
func makeEmbeddingKey(documentID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, documentID))
}

// makeCorpusKey generates a key for a corpus example by ID.
func makeCorpusKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", corpusPrefix, id))
}

// makeCorpusTupleKey generates a composite key for example lookup by (category, title).
// Format: prefix:category:title
func makeCorpusTupleKey(category, title string) []byte {
	prefix := corpusTuplePrefix + ":"
	totalSize := len(prefix) + len(category) + len(title)
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(category))
	copy(buf[offset:], []byte(title))
	return buf
}

// makeCheckpointKey generates a key for processor checkpoints.
func makeCheckpointKey(processorType string) []byte {
	return []byte(fmt.Sprintf("%s:chkpt", processorType))
}
