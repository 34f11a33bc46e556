package core

// Display names for the enumerations used in AST nodes. Serializers print
// these instead of the numeric values.

var literalTypeNames = [...]string{
	LiteralNumber:         "number",
	LiteralString:         "string",
	LiteralNationalString: "national_string",
	LiteralHexString:      "hex_string",
	LiteralBool:           "bool",
	LiteralNull:           "null",
}

func (t LiteralType) String() string { return enumName(literalTypeNames[:], int(t)) }

var columnOptionNames = [...]string{
	ColumnNotNull:       "NOT NULL",
	ColumnNull:          "NULL",
	ColumnDefault:       "DEFAULT",
	ColumnPrimaryKey:    "PRIMARY KEY",
	ColumnUnique:        "UNIQUE",
	ColumnReferences:    "REFERENCES",
	ColumnCheck:         "CHECK",
	ColumnAutoIncrement: "AUTO_INCREMENT",
}

func (k ColumnOptionKind) String() string { return enumName(columnOptionNames[:], int(k)) }

var constraintNames = [...]string{
	ConstraintPrimaryKey: "PRIMARY KEY",
	ConstraintUnique:     "UNIQUE",
	ConstraintForeignKey: "FOREIGN KEY",
	ConstraintCheck:      "CHECK",
}

func (k ConstraintKind) String() string { return enumName(constraintNames[:], int(k)) }

var alterColumnNames = [...]string{
	SetDefault:  "SET DEFAULT",
	DropDefault: "DROP DEFAULT",
	SetNotNull:  "SET NOT NULL",
	DropNotNull: "DROP NOT NULL",
}

func (a AlterColumnAction) String() string { return enumName(alterColumnNames[:], int(a)) }

func (k TransactionModeKind) String() string {
	if k == AccessMode {
		return "access_mode"
	}
	return "isolation_level"
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "UNKNOWN"
	}
	return names[i]
}
