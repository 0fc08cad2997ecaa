// SPDX-License-Identifier: MIT
// Package: treeembed/store
//
// encoding.go — float32 embedding BLOBs.
//
// A node is stored as two little-endian IEEE 754 float32 values (x, y)
// with no length prefix.

package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/treeembed/geom"
)

const embeddingSize = 8

func encodeEmbedding(p geom.Point) []byte {
	b := make([]byte, embeddingSize)
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(p.Y)))

	return b
}

func decodeEmbedding(b []byte) ([]float32, error) {
	if len(b) != embeddingSize {
		return nil, fmt.Errorf("blob length %d, want %d: %w", len(b), embeddingSize, ErrBadEmbedding)
	}

	return []float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
	}, nil
}
