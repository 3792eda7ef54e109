package statements

// CreateDatabaseStatement represents CREATE DATABASE <name>
type CreateDatabaseStatement struct {
	BaseStatement
	Name string
}

func NewCreateDatabaseStatement(name string) *CreateDatabaseStatement {
	return &CreateDatabaseStatement{
		BaseStatement: NewBaseStatement(CreateDatabase),
		Name:          name,
	}
}

func (s *CreateDatabaseStatement) Validate() error {
	return s.requireNonEmpty("Name", s.Name, "database name cannot be empty")
}

func (s *CreateDatabaseStatement) String() string {
	return "CREATE DATABASE " + s.Name
}

// DropDatabaseStatement represents DROP DATABASE <name>
type DropDatabaseStatement struct {
	BaseStatement
	Name string
}

func NewDropDatabaseStatement(name string) *DropDatabaseStatement {
	return &DropDatabaseStatement{
		BaseStatement: NewBaseStatement(DropDatabase),
		Name:          name,
	}
}

func (s *DropDatabaseStatement) Validate() error {
	return s.requireNonEmpty("Name", s.Name, "database name cannot be empty")
}

func (s *DropDatabaseStatement) String() string {
	return "DROP DATABASE " + s.Name
}
