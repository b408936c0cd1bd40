package util

import "errors"

var (
	ErrNotEnoughStars  = errors.New("not enough stars")
	ErrSkinNotUnlocked = errors.New("skin not unlocked")
	ErrPowerUpEmpty    = errors.New("power-up not available")
	ErrInvalidBackup   = errors.New("backup file is missing version or progress fields")
	ErrBackupRejected  = errors.New("backup file failed validation")
	ErrUnknownChapter  = errors.New("chapter not found")
)
