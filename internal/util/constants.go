package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"
	StoreMySQL = "mysql"
)

const (
	ArchiveLocal = "local"
	ArchiveMinio = "minio"
)
