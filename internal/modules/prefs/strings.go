package prefs

// Translation tables for the short user-facing strings the client renders
// itself. Everything else comes from the remote service verbatim.
var translations = map[Language]map[string]string{
	LangEnglish: {
		"auth.too_many_attempts": "Too many signup attempts. Please try again in a few minutes.",
		"auth.invalid_login":     "Incorrect email or password.",
		"auth.signed_out":        "You have been signed out.",
		"orders.not_found":       "Order not found.",
		"wallet.no_wallet":       "No wallet yet. Complete your first sale to open one.",
		"common.retry":           "Please try again.",
	},
	LangArabic: {
		"auth.too_many_attempts": "محاولات تسجيل كثيرة جدًا. يرجى المحاولة بعد دقائق.",
		"auth.invalid_login":     "البريد الإلكتروني أو كلمة المرور غير صحيحة.",
		"auth.signed_out":        "تم تسجيل خروجك.",
		"orders.not_found":       "الطلب غير موجود.",
		"wallet.no_wallet":       "لا توجد محفظة بعد. أكمل أول عملية بيع لفتح واحدة.",
		"common.retry":           "يرجى المحاولة مرة أخرى.",
	},
}
