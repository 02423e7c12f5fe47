package modislib

import (
	"strconv"
	"strings"

	"github.com/wgdzlh/modislib/log"

	"go.uber.org/zap"
)

const structMetaLogTag = "StructMeta:"

// parseCornerPair extracts one "Marker=(x,y)" coordinate pair from the
// free-text ECS struct metadata: find the marker, consume up to the
// closing parenthesis, split on the comma, parse two floats. Any
// deviation from that layout is ErrBadStructMetadata; a silently wrong
// grid is never acceptable.
func parseCornerPair(structure, marker string) (x, y float64, err error) {
	i := strings.Index(structure, marker)
	if i < 0 {
		log.Error(structMetaLogTag+"marker missing", zap.String("marker", marker))
		err = ErrBadStructMetadata
		return
	}
	rest := structure[i+len(marker):]
	j := strings.IndexByte(rest, ')')
	if j < 0 {
		log.Error(structMetaLogTag+"unclosed coordinate pair", zap.String("marker", marker))
		err = ErrBadStructMetadata
		return
	}
	parts := strings.Split(rest[:j], ",")
	if len(parts) != 2 {
		log.Error(structMetaLogTag+"wrong coordinate count", zap.String("marker", marker), zap.Int("count", len(parts)))
		err = ErrBadStructMetadata
		return
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		log.Error(structMetaLogTag+"bad x coordinate", zap.String("marker", marker), zap.Error(err))
		err = ErrBadStructMetadata
		return
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		log.Error(structMetaLogTag+"bad y coordinate", zap.String("marker", marker), zap.Error(err))
		err = ErrBadStructMetadata
	}
	return
}
