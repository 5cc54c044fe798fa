package format

type (
	// PhysicalStreamType identifies the role of an integer stream inside a column.
	PhysicalStreamType uint8
	// DictionaryType refines a DATA stream.
	DictionaryType uint8
	// LengthType refines a LENGTH stream.
	LengthType uint8
	// OffsetType refines an OFFSET stream.
	OffsetType uint8
	// LogicalTechnique is a logical-level integer transform applied on top of
	// the physical layer.
	LogicalTechnique uint8
	// PhysicalTechnique is the physical-level integer codec of a stream.
	PhysicalTechnique uint8
	// GeometryType enumerates the supported vector-tile geometry kinds.
	GeometryType uint8
	// VertexBufferType describes how vertices are stored in a geometry column.
	VertexBufferType uint8
	// CompressionType identifies the outer compression of a tile buffer.
	CompressionType uint8
)

const (
	StreamPresent PhysicalStreamType = 0x0 // StreamPresent marks a nullability bit stream.
	StreamData    PhysicalStreamType = 0x1 // StreamData carries column values.
	StreamOffset  PhysicalStreamType = 0x2 // StreamOffset carries dictionary offsets.
	StreamLength  PhysicalStreamType = 0x3 // StreamLength carries per-item lengths.

	DictionaryNone   DictionaryType = 0x0
	DictionarySingle DictionaryType = 0x1
	DictionaryShared DictionaryType = 0x2
	DictionaryVertex DictionaryType = 0x3
	DictionaryMorton DictionaryType = 0x4
	DictionaryString DictionaryType = 0x5

	LengthVarBinary  LengthType = 0x0
	LengthGeometries LengthType = 0x1
	LengthParts      LengthType = 0x2
	LengthRings      LengthType = 0x3
	LengthTriangles  LengthType = 0x4
	LengthSymbol     LengthType = 0x5
	LengthDictionary LengthType = 0x6

	OffsetVertex OffsetType = 0x0
	OffsetIndex  OffsetType = 0x1
	OffsetString OffsetType = 0x2
	OffsetKey    OffsetType = 0x3

	TechniqueNone               LogicalTechnique = 0x0 // TechniqueNone leaves values untouched.
	TechniqueDelta              LogicalTechnique = 0x1 // TechniqueDelta stores differences between consecutive values.
	TechniqueComponentwiseDelta LogicalTechnique = 0x2 // TechniqueComponentwiseDelta applies delta independently to x and y components.
	TechniqueRle                LogicalTechnique = 0x3 // TechniqueRle stores run lengths followed by run values.
	TechniqueMorton             LogicalTechnique = 0x4 // TechniqueMorton stores vertices as Z-order codes.
	TechniquePfor               LogicalTechnique = 0x5
	TechniquePforDelta          LogicalTechnique = 0x6

	PhysicalNone     PhysicalTechnique = 0x0 // PhysicalNone stores raw big-endian int32 words.
	PhysicalFastPfor PhysicalTechnique = 0x1 // PhysicalFastPfor stores patched bit-packed blocks with a VByte tail.
	PhysicalVarint   PhysicalTechnique = 0x2 // PhysicalVarint stores consecutive unsigned varints.

	GeometryPoint           GeometryType = 0x0
	GeometryLineString      GeometryType = 0x1
	GeometryPolygon         GeometryType = 0x2
	GeometryMultiPoint      GeometryType = 0x3
	GeometryMultiLineString GeometryType = 0x4
	GeometryMultiPolygon    GeometryType = 0x5

	VertexVec2   VertexBufferType = 0x0 // VertexVec2 stores interleaved x,y int32 pairs.
	VertexMorton VertexBufferType = 0x1 // VertexMorton stores one Z-order int32 code per vertex.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (t PhysicalStreamType) String() string {
	switch t {
	case StreamPresent:
		return "Present"
	case StreamData:
		return "Data"
	case StreamOffset:
		return "Offset"
	case StreamLength:
		return "Length"
	default:
		return "Unknown"
	}
}

func (t DictionaryType) String() string {
	switch t {
	case DictionaryNone:
		return "None"
	case DictionarySingle:
		return "Single"
	case DictionaryShared:
		return "Shared"
	case DictionaryVertex:
		return "Vertex"
	case DictionaryMorton:
		return "Morton"
	case DictionaryString:
		return "String"
	default:
		return "Unknown"
	}
}

func (t LengthType) String() string {
	switch t {
	case LengthVarBinary:
		return "VarBinary"
	case LengthGeometries:
		return "Geometries"
	case LengthParts:
		return "Parts"
	case LengthRings:
		return "Rings"
	case LengthTriangles:
		return "Triangles"
	case LengthSymbol:
		return "Symbol"
	case LengthDictionary:
		return "Dictionary"
	default:
		return "Unknown"
	}
}

func (t OffsetType) String() string {
	switch t {
	case OffsetVertex:
		return "Vertex"
	case OffsetIndex:
		return "Index"
	case OffsetString:
		return "String"
	case OffsetKey:
		return "Key"
	default:
		return "Unknown"
	}
}

func (t LogicalTechnique) String() string {
	switch t {
	case TechniqueNone:
		return "None"
	case TechniqueDelta:
		return "Delta"
	case TechniqueComponentwiseDelta:
		return "ComponentwiseDelta"
	case TechniqueRle:
		return "Rle"
	case TechniqueMorton:
		return "Morton"
	case TechniquePfor:
		return "Pfor"
	case TechniquePforDelta:
		return "PforDelta"
	default:
		return "Unknown"
	}
}

func (t PhysicalTechnique) String() string {
	switch t {
	case PhysicalNone:
		return "None"
	case PhysicalFastPfor:
		return "FastPfor"
	case PhysicalVarint:
		return "Varint"
	default:
		return "Unknown"
	}
}

func (t GeometryType) String() string {
	switch t {
	case GeometryPoint:
		return "Point"
	case GeometryLineString:
		return "LineString"
	case GeometryPolygon:
		return "Polygon"
	case GeometryMultiPoint:
		return "MultiPoint"
	case GeometryMultiLineString:
		return "MultiLineString"
	case GeometryMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// IsMulti reports whether the geometry kind is one of the multi-part kinds.
func (t GeometryType) IsMulti() bool {
	return t == GeometryMultiPoint || t == GeometryMultiLineString || t == GeometryMultiPolygon
}

// IsPolygon reports whether the geometry kind produces closed rings.
func (t GeometryType) IsPolygon() bool {
	return t == GeometryPolygon || t == GeometryMultiPolygon
}

func (t VertexBufferType) String() string {
	switch t {
	case VertexVec2:
		return "Vec2"
	case VertexMorton:
		return "Morton"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
