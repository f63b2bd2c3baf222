package i18n

var labelsUZ = map[Action]string{
	ActionMenu:          "⬅️ Menyu",
	ActionWatchProfiles: "🔎 Anketalarni ko'rish",
	ActionLikes:         "👍 Layklar",
	ActionMatches:       "❤️ Juftliklar",
	ActionSettings:      "⚙️ Sozlamalar",

	ActionRewind:     "⏪",
	ActionRewindLong: "⏪ Orqaga qaytarish",
	ActionLike:       "👍",
	ActionDislike:    "👎",
	ActionReport:     "✍️ Shikoyat qilish",
	ActionPrevPage:   "⬅️",
	ActionNextPage:   "➡️",

	ActionMyProfile:      "👤 Mening profilim",
	ActionSearchSettings: "🔎 Qidiruv sozlamalari",
	ActionLanguage:       "🌐 Til",
	ActionDeactivate:     "⛔️ Faolsizlantirish",
	ActionDeleteAccount:  "❌ Hisobni o'chirish",

	ActionEditName:      "✏️ Ism",
	ActionEditBirthDate: "🔢 Tug'ilgan sana",
	ActionEditGender:    "👫 Jins",
	ActionEditBio:       "📝 O'zim haqimda",
	ActionEditLocation:  "📍 Joylashuv",
	ActionEditMedia:     "📷 Media",
	ActionBack:          "⬅️ Orqaga",

	ActionGenderPrefs: "👩‍❤️‍👨 Jins bo'yicha afzallik",
	ActionAgePrefs:    "🔢 Yosh bo'yicha afzallik",

	ActionSkip:         "O'tkazib yuborish",
	ActionContinue:     "Davom etish",
	ActionSendLocation: "📍 Joylashuvni yuborish",
	ActionClear:        "❌ Tozalash",

	ActionYes: "Ha",
	ActionNo:  "Yo'q",

	ActionActivate:          "Hisobni faollashtirish",
	ActionStartRegistration: "Ro'yxatdan o'tishni boshlash",

	ActionGenderMale:   "Erkak 👨",
	ActionGenderFemale: "Ayol 👩",
	ActionPreferWomen:  "Ayollar 👩",
	ActionPreferMen:    "Erkaklar 👨",

	ActionLangUz: "Uzbek 🇺🇿",
	ActionLangRu: "Russian 🇷🇺",
	ActionLangEn: "English 🇺🇸",
}

var messagesUZ = map[string]string{
	MsgSelectLanguage:      "Salom! Tilni tanlang",
	MsgSelectLanguageRetry: "Berilgan tillardan birini tanlang",
	MsgAskName:             "Ismingiz nima?",
	MsgAskBirthDate: "Tug'ilgan sanangiz qachon? Quyidagi formatlardan birini ishlating:" +
		"\n" +
		"\n👉 <b>YYYY-MM-DD</b> (Masalan, 2000-12-31)" +
		"\n👉 <b>DD.MM.YYYY</b> (Masalan, 31.12.2000)" +
		"\n👉 <b>MM/DD/YYYY</b> (Masalan, 12/31/2000)",
	MsgAskGender:        "Jinsingiz qanday?",
	MsgSelectOption:     "Berilgan variantlardan birini tanlang",
	MsgAskBio:           "O'zingiz haqingizda gapirib bering. Qiziqishlaringiz, sevimli mashg'ulotlaringiz va h.k.?",
	MsgAskPreferredSex:  "Kim sizni qiziqtiradi?",
	MsgAskAgeRange:      "Qaysi yosh oralig'i sizni qiziqtiradi? (masalan, 18-25)",
	MsgAskLocation:      "Joylashuvingizni yuboring yoki shahringiz nomini kiriting",
	MsgAskLocationExact: "Quyidagi tugmani bosib joylashuvingizni yuboring",
	MsgCityPlaceholder:  "Shahar nomi",
	MsgAskMedia:         "O'zingizning surat yoki videolaringizni yuklang (%d-%d)",

	MsgCityNotFound:     "Shahar topilmadi",
	MsgNoCitiesFound:    "Qidiruvingiz bo'yicha shaharlar topilmadi.",
	MsgCitySearchError:  "Shaharlarni qidirishda xatolik. Qaytadan urinib ko'ring.",
	MsgSelectCity:       "Shahringizni tanlang",
	MsgPlaceError:       "Joy haqida ma'lumot olishda xatolik. Qaytadan urinib ko'ring.",
	MsgLocationNotFound: "Joylashuv topilmadi. Qaytadan urinib ko'ring.",
	MsgLocationError:    "Joylashuvni yangilashda xatolik. Qaytadan urinib ko'ring.",

	MsgFileUploaded:     "Fayl yuklandi",
	MsgFileUploadedMore: "Fayl yuklandi. Xohlasangiz yana fayl yuklang yoki \"Davom etish\" tugmasini bosing",
	MsgUploadAtLeastOne: "Iltimos, kamida bitta surat yuklang",
	MsgMediaInvalid:     "Media fayllar noto'g'ri. Yuklangan fayllarni tekshiring.",
	MsgMediaTooLarge:    "Media fayllar juda katta. Kichikroq fayllardan foydalaning.",
	MsgMediaUpdateError: "Mediani yangilashda xatolik. Qaytadan urinib ko'ring.",

	MsgRegistrationError: "Hisobingizni ro'yxatdan o'tkazishda xatolik yuz berdi. Keyinroq urinib ko'ring yoki qo'llab-quvvatlash xizmatiga murojaat qiling.",
	MsgRegistrationDone:  "Ro'yxatdan o'tish yakunlandi!",
	MsgInvalidBirthDate:  "Tug'ilgan sana noto'g'ri",
	MsgBanned:            "Hisobingiz bloklangan. Qo'llab-quvvatlash xizmatiga murojaat qiling.",
	MsgHelp: "Salom! Men sizga juftingizni topishga yordam beradigan botman.\n\n" +
		"Bu qanday ishlaydi: sizga boshqa foydalanuvchilarning anketalari ko'rsatiladi, " +
		"ularga layk yoki dislayk qo'yishingiz mumkin. Anketaga layk bossangiz, biz " +
		"foydalanuvchini bu haqda xabardor qilamiz. Agar u ham sizga layk bossa, " +
		"siz juftlik bo'lasiz va suhbatni boshlashingiz mumkin.\n\n" +
		"Savollaringiz bo'lsa, bizning " +
		"<a href='https://t.me/anormatchsupportbot'>qo'llab-quvvatlash xizmatimizga</a> murojaat qiling.",

	MsgMenu:           "Menyu",
	MsgSettings:       "Sozlamalar",
	MsgChooseLanguage: "Tilni tanlang",
	MsgReportReason:   "Bu foydalanuvchi ustidan shikoyat qilish sababi nima?",
	MsgReported:       "Foydalanuvchi ustidan shikoyat yuborildi",
	MsgDeactivateAsk:  "Hisobingizni faolsizlantirishga ishonchingiz komilmi? Hisobingizni hech kim ko'rmaydi, hatto siz layk bosgan foydalanuvchilar ham",
	MsgActivated:      "Hisobingiz faollashtirildi",
	MsgDeactivated:    "Hisobingiz faolsizlantirildi. Uni faollashtirish uchun quyidagi tugmani bosing",
	MsgDeleteAsk:      "Hisobingizni o'chirishga ishonchingiz komilmi? Barcha ma'lumotlaringiz yo'qoladi",
	MsgDeleted:        "Hisobingiz o'chirildi. Qaytadan boshlash uchun quyidagi tugmani bosing",

	MsgFetchError:      "Ma'lumotlarni olishda xatolik yuz berdi.",
	MsgNoCandidates:    "Hozircha ko'rsatadigan hech kim qolmadi.",
	MsgRewinding:       "⏪ Orqaga qaytarilmoqda",
	MsgRewindLimit:     "%d martadan ko'p orqaga qaytarib bo'lmaydi",
	MsgNothingToRewind: "Orqaga qaytaradigan boshqa anketa yo'q",
	MsgUserNotFound:    "Foydalanuvchi topilmadi",
	MsgGenericError:    "Nimadir noto'g'ri ketdi",

	MsgMatches:           "Juftliklar",
	MsgLikes:             "Layklar",
	MsgMatchesFetchError: "Juftliklarni yuklab bo'lmadi",
	MsgNoMatches:         "Juftliklar topilmadi",
	MsgMutualLike:        "Siz bir-biringizga yoqdingiz. Quyidagi tugmani bosib suhbatni boshlang 👇",
	MsgStartChat:         "Suhbatni boshlash",
	MsgNoLikes:           "Layklar topilmadi",
	MsgDistanceKM:        "📍 %d km",

	MsgProfilePrompt:      "Profilingizni yangilash uchun quyidagi tugmalarni bosing",
	MsgProfileNotFound:    "Foydalanuvchi profili topilmadi. Qaytadan urinib ko'ring.",
	MsgProfileLoadError:   "Profilni yuklab bo'lmadi. Keyinroq urinib ko'ring.",
	MsgEnterName:          "Ismingizni kiriting",
	MsgSelectGender:       "Jinsingizni tanlang",
	MsgAskBioUpdate:       "O'zingiz haqingizda batafsilroq gapirib bering. Qiziqishlaringiz, sevimli mashg'ulotlaringiz va h.k.?",
	MsgProfileUpdated:     "Profilingiz yangilandi",
	MsgSearchSettings:     "Qidiruv sozlamalari",
	MsgPreferencesUpdated: "Qidiruv sozlamalari yangilandi",

	"Name must only contain letters and spaces":          "Ism faqat harflar va bo'shliqlardan iborat bo'lishi kerak",
	"Name must be at least %d characters long":           "Ism kamida %d ta belgidan iborat bo'lishi kerak",
	"Name must be less than %d characters long":          "Ism %d ta belgidan kam bo'lishi kerak",
	"You must be at least %d years old to use this bot":  "Botdan foydalanish uchun kamida %d yoshda bo'lishingiz kerak",
	"You must be less than %d years old to use this bot": "Botdan foydalanish uchun %d yoshdan kichik bo'lishingiz kerak",
	"Invalid date format. Supported formats are: \n" +
		"\n- YYYY-MM-DD (1970-10-20), " +
		"\n- DD.MM.YYYY (20.10.1970), " +
		"\n- MM/DD/YYYY (10/20/1970)": "Sana formati noto'g'ri. Qo'llab-quvvatlanadigan formatlar: \n" +
		"\n- YYYY-MM-DD (1970-10-20), " +
		"\n- DD.MM.YYYY (20.10.1970), " +
		"\n- MM/DD/YYYY (10/20/1970)",
	"Bio must be less than %d characters long":          "Bio %d ta belgidan kam bo'lishi kerak",
	"Please upload at least %d media files":             "Iltimos, kamida %d ta media fayl yuklang",
	"You can upload up to %d media files":               "Ko'pi bilan %d ta media fayl yuklash mumkin",
	"Please enter a valid age range":                    "Iltimos, to'g'ri yosh oralig'ini kiriting",
	"Minimum age needs be to lower than maximum age":    "Minimal yosh maksimal yoshdan kichik bo'lishi kerak",
	"Age can't be lower than %d":                        "Yosh %d dan kichik bo'lishi mumkin emas",
	"Age can't be higher than %d":                       "Yosh %d dan katta bo'lishi mumkin emas",
	"Video duration can't be longer than %d seconds":    "Video davomiyligi %d soniyadan oshmasligi kerak",
	"Message text cannot be empty":                      "Xabar matni bo'sh bo'lishi mumkin emas",
	"Message text must be less than %d characters long": "Xabar matni %d ta belgidan kam bo'lishi kerak",
}
