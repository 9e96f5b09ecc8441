// Package docs ichidan-dokusho-place API.
//
// 読書に集中できる場所（喫茶店・本屋・バー）を駅単位で探せるディレクトリAPI。
// 八地方区分・都道府県・駅の階層で絞り込み、管理画面向けのCRUDを提供します。
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
