package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	INVALID_DATE_RANGE  = 40003 // 400 - 結束日期早於開始日期
	INVALID_TIME_RANGE  = 40004 // 400 - 簽退時間早於簽到時間
	INVALID_PERIOD      = 40005 // 400 - 薪資期間格式錯誤（YYYY-MM）
	WEAK_PASSWORD       = 40006 // 400 - 密碼長度不足
	PASSWORD_MISMATCH   = 40007 // 400 - 新密碼與確認密碼不一致

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED        = 40100 // 401 - 未登入
	INVALID_SESSION     = 40101 // 401 - 會話失效
	INVALID_CREDENTIALS = 40102 // 401 - 帳號或密碼錯誤
	PROFILE_MISMATCH    = 40103 // 401 - 帳號與員工信箱不符
	FORBIDDEN           = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 狀態衝突 (409 系列)
	ALREADY_CHECKED_IN  = 40900 // 409 - 當日已簽到
	ALREADY_CHECKED_OUT = 40901 // 409 - 當日已簽退
	NOT_CHECKED_IN      = 40902 // 409 - 尚未簽到
	ALREADY_DECIDED     = 40903 // 409 - 假單已審核
	DUPLICATE_PERIOD    = 40904 // 409 - 該期間薪資已產生
	QUOTA_EXCEEDED      = 40905 // 409 - 請假配額不足
	DUPLICATE_USERNAME  = 40906 // 409 - 帳號名稱重複
	DUPLICATE_NAME      = 40907 // 409 - 名稱重複（部門等）

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 登入嘗試次數超過上限

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	STORAGE_ERROR       = 50001 // 500 - 資料檔讀寫失敗
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
	LOCK_TIMEOUT        = 50003 // 503 - 等待集合鎖逾時
)
