package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Unifier errors
	UnifierSchemaConflictError

	// Corpus errors
	CorpusEnumerateError
	CorpusBadPathError
	CorpusReadError
	CorpusCacheError

	// Fetch errors
	FetchInstitutionsConfigError
	FetchRequestError
	FetchBadResponseError

	// Populate errors
	PopulateUnknownKindError
	PopulateEmptyCorpusError
	PopulateDocumentError
	PopulateCopyError
	PopulateAllDocumentsFailedError
)
