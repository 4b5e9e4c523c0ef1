package handlers

// User-visible messages, centralized so the wire contract stays in one
// place. The strings match the original Japanese service.
const (
	msgLoginOK      = "ok"
	msgLoginFailed  = "メールアドレスまたはパスワードが違います"
	msgMissingParam = "パラメーター不足"
	msgEmailFormat  = "メールアドレスの形式が不正です"
	msgEmailTaken   = "メールアドレスは既に登録されています"
	msgServerError  = "サーバーエラーが発生しました"

	msgNameRequired  = "ユーザー名を入力してください"
	msgLoginRequired = "ログインが必要です"
	msgNameChanged   = "ユーザー名を変更しました"

	msgAuthorNameRequired = "著者名は必須です"
	msgAuthorIDRequired   = "著者IDは必須です"
	msgAuthorNotFound     = "該当する著者が存在しません"
	msgAuthorDeleted      = "著者を削除しました"

	msgPublisherNameRequired = "出版社名は必須です"
	msgPublisherIDRequired   = "出版社IDは必須です"
	msgPublisherNotFound     = "該当する出版社が存在しません"
	msgPublisherDeleted      = "出版社を削除しました"

	msgISBNRequired     = "ISBNは必須です"
	msgTitleRequired    = "タイトルは必須です"
	msgYearRequired     = "出版年は必須です"
	msgMonthRequired    = "出版月は必須です"
	msgISBNTaken        = "このISBNは既に登録されています"
	msgInvalidAuthor    = "著者IDが不正です"
	msgInvalidPublisher = "出版社IDが不正です"
	msgBookCreated      = "書籍を登録しました"
)
