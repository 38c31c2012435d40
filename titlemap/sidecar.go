package titlemap

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wlinknet/wlinknet/internal/hash"
)

// WriteSidecar writes titles, in the given order, as the text sidecar
// format: one "<decimal id>\t<title>\n" record per line, ids assigned by
// position in titles. The writer calls this once at Finalize time with
// the Builder's interned titles.
func WriteSidecar(w io.Writer, titles []string) error {
	bw := bufio.NewWriter(w)

	for id, title := range titles {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", id, title); err != nil {
			return fmt.Errorf("titlemap: write sidecar: %w", err)
		}
	}

	return bw.Flush()
}

// LoadSidecar reads a text sidecar and returns a TitleMap. Lines that do
// not parse as "<decimal id>\t<title>" are skipped with a logged warning,
// not treated as fatal — this keeps a hand-edited sidecar with a few
// malformed lines readable.
func LoadSidecar(r io.Reader, logger *slog.Logger) (*TitleMap, error) {
	if logger == nil {
		logger = slog.Default()
	}

	m := &TitleMap{}
	for i := range m.shards {
		m.shards[i] = make(map[string]uint64)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		idStr, title, ok := strings.Cut(line, "\t")
		if !ok {
			logger.Warn("titlemap: malformed sidecar line, skipping", "line", lineNo)
			continue
		}

		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			logger.Warn("titlemap: malformed sidecar line, skipping", "line", lineNo, "error", err)
			continue
		}

		// Ids normally appear in contiguous assignment order, but a
		// hand-edited sidecar may have gaps; pad with placeholders so
		// byID stays indexable by id.
		for uint64(len(m.byID)) <= id {
			m.byID = append(m.byID, "")
		}
		m.byID[id] = title

		shard := hash.ID(title) & (shardCount - 1)
		m.shards[shard][title] = id
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("titlemap: read sidecar: %w", err)
	}

	m.nodeCount = uint32(len(m.byID))

	return m, nil
}
