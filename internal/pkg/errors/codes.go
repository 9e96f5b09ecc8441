package errors

import "net/http"

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeDuplicateKey    = "DUPLICATE_KEY"
	CodeConflict        = "CONFLICT"
	CodeNotFound        = "NOT_FOUND"
	CodeDatabaseError   = "DATABASE_ERROR"
)

var (
	ErrStationFieldsRequired = New(
		CodeValidationError,
		"駅名と所在地は必須です",
		http.StatusBadRequest,
	)

	ErrPlaceFieldsRequired = New(
		CodeValidationError,
		"名前、Google MapsのURL、最寄り駅は必須です",
		http.StatusBadRequest,
	)

	ErrInvalidWalkingTime = New(
		CodeValidationError,
		"徒歩時間は1〜60の整数で入力してください",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeValidationError,
		"IDの形式が正しくありません",
		http.StatusBadRequest,
	)

	ErrInvalidRequestBody = New(
		CodeValidationError,
		"リクエストの形式が正しくありません",
		http.StatusBadRequest,
	)

	ErrDuplicateStationName = New(
		CodeDuplicateKey,
		"この駅名は既に登録されています",
		http.StatusBadRequest,
	)

	ErrStationInUse = New(
		CodeConflict,
		"この駅は店舗に使用されているため削除できません",
		http.StatusBadRequest,
	)

	ErrStationNotFound = New(
		CodeNotFound,
		"指定された駅が見つかりません",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		CodeNotFound,
		"指定されたデータが見つかりません",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		CodeDatabaseError,
		"データベースエラーが発生しました",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"サーバーエラーが発生しました",
		http.StatusInternalServerError,
	)
)
