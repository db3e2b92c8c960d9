package record

import "encoding/binary"

// rawRecordSize is the width of the default fixed-layout decoder below.
// This is not the real game's on-disk format — decoding that is out of
// scope for this package — it exists only so directory ingestion has a
// concrete, testable default rather than requiring every caller to supply
// one.
const rawRecordSize = 26

// DefaultDecoder decodes the minimal fixed-width layout this package
// defines for its own tests and CLI default: a flat little-endian struct,
// any file of a different length is rejected.
func DefaultDecoder(data []byte) (Record, bool) {
	if len(data) != rawRecordSize {
		return Record{}, false
	}

	var r Record
	r.EncryptionConstant = binary.LittleEndian.Uint32(data[0:4])
	r.Personality = binary.LittleEndian.Uint32(data[4:8])
	r.TrainerID = binary.LittleEndian.Uint16(data[8:10])
	r.SecretID = binary.LittleEndian.Uint16(data[10:12])
	copy(r.IVs[:], data[12:18])
	r.FlawlessIVCount = data[18]
	r.AbilityNumber = data[19]
	r.Gender = data[20]
	r.GenderRatio = data[21]
	r.Nature = data[22]
	r.IsAlpha = data[23] != 0
	r.HeightScalar = data[24]
	r.WeightScalar = data[25]
	return r, true
}

// Encode is the DefaultDecoder's inverse, used by tests to build fixture
// files without hand-assembling byte slices.
func Encode(r Record) []byte {
	data := make([]byte, rawRecordSize)
	binary.LittleEndian.PutUint32(data[0:4], r.EncryptionConstant)
	binary.LittleEndian.PutUint32(data[4:8], r.Personality)
	binary.LittleEndian.PutUint16(data[8:10], r.TrainerID)
	binary.LittleEndian.PutUint16(data[10:12], r.SecretID)
	copy(data[12:18], r.IVs[:])
	data[18] = r.FlawlessIVCount
	data[19] = r.AbilityNumber
	data[20] = r.Gender
	data[21] = r.GenderRatio
	data[22] = r.Nature
	if r.IsAlpha {
		data[23] = 1
	}
	data[24] = r.HeightScalar
	data[25] = r.WeightScalar
	return data
}
