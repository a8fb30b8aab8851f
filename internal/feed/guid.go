package feed

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"movie_feed/internal/domain"
)

// GUID fingerprints a credit by id, title, release date, media kind and role
// kind, in that order. Other fields do not affect it.
func GUID(c domain.Credit) string {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(c.ID()))
	_, _ = h.Write(buf[:])

	binary.LittleEndian.PutUint64(buf[:], uint64(len(c.Title())))
	_, _ = h.Write(buf[:])
	_, _ = h.WriteString(c.Title())

	if date := c.ReleaseDate(); date != nil {
		_, _ = h.Write([]byte{1})
		binary.LittleEndian.PutUint64(buf[:], uint64(date.Days()))
		_, _ = h.Write(buf[:])
	} else {
		_, _ = h.Write([]byte{0})
	}

	_, _ = h.Write([]byte{byte(c.MediaKind()), byte(c.RoleKind())})

	return strconv.FormatUint(h.Sum64(), 10)
}
