package libdiff

const (
	DeleteOp   = "!delete"
	InsertOp   = "!insert"
	ReplaceOp  = "!replace"
	MappingOp  = "!mapdiff"
	SequenceOp = "!arraydiff"
	StringOp   = "!strdiff"
)
