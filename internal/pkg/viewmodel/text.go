package viewmodel

import "github.com/ManuelReschke/Store2070/internal/pkg/locale"

// Text holds the UI strings of one locale.
type Text struct {
	Brand       string
	Subtitle    string
	Products    string
	Vault       string
	Systems     string
	Switch      string
	Login       string
	Logout      string
	Register    string
	Username    string
	Password    string
	Confirm     string
	Submit      string
	Pending     string
	NoAccount   string
	HaveAccount string
	Welcome     string
	AdminTitle  string
	VaultTitle  string
	Verify      string
	LoggedIn    string
	LoggedOut   string
	Registered  string
	Verified    string
}

var texts = map[locale.Locale]Text{
	locale.English: {
		Brand:       "Store 2070",
		Subtitle:    "QUANTUM SECURE",
		Products:    "Products",
		Vault:       "The Vault",
		Systems:     "Systems",
		Switch:      "العربية (AR)",
		Login:       "Login",
		Logout:      "Log Out",
		Register:    "Register",
		Username:    "Username",
		Password:    "Password",
		Confirm:     "Confirm Password",
		Submit:      "Submit",
		Pending:     "Authenticating...",
		NoAccount:   "Don't have an account? Register",
		HaveAccount: "Already registered? Log in",
		Welcome:     "The future of commerce is here.",
		AdminTitle:  "Command Center",
		VaultTitle:  "The Vault",
		Verify:      "Email Verification",
		LoggedIn:    "Access granted. Welcome back.",
		LoggedOut:   "Session terminated.",
		Registered:  "Identity created. Check your inbox to verify it.",
		Verified:    "Email verified. Access granted.",
	},
	locale.Arabic: {
		Brand:       "Store 2070",
		Subtitle:    "آمان كمومي",
		Products:    "المنتجات",
		Vault:       "الخزنة",
		Systems:     "الأنظمة",
		Switch:      "English (EN)",
		Login:       "تسجيل الدخول",
		Logout:      "تسجيل الخروج",
		Register:    "إنشاء حساب",
		Username:    "اسم المستخدم",
		Password:    "كلمة المرور",
		Confirm:     "تأكيد كلمة المرور",
		Submit:      "إرسال",
		Pending:     "جارٍ التحقق...",
		NoAccount:   "ليس لديك حساب؟ سجّل الآن",
		HaveAccount: "لديك حساب؟ سجّل الدخول",
		Welcome:     "مستقبل التجارة هنا.",
		AdminTitle:  "مركز القيادة",
		VaultTitle:  "الخزنة",
		Verify:      "تأكيد البريد الإلكتروني",
		LoggedIn:    "تم منح الوصول. مرحباً بعودتك.",
		LoggedOut:   "تم إنهاء الجلسة.",
		Registered:  "تم إنشاء الهوية. تحقق من بريدك لتأكيدها.",
		Verified:    "تم تأكيد البريد. تم منح الوصول.",
	},
}

// TextFor returns the strings of l, or English for unknown locales.
func TextFor(l locale.Locale) Text {
	if t, ok := texts[l]; ok {
		return t
	}
	return texts[locale.Default]
}
