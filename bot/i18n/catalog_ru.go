package i18n

var labelsRU = map[Action]string{
	ActionMenu:          "⬅️ Меню",
	ActionWatchProfiles: "🔎 Смотреть анкеты",
	ActionLikes:         "👍 Лайки",
	ActionMatches:       "❤️ Пары",
	ActionSettings:      "⚙️ Настройки",

	ActionRewind:     "⏪",
	ActionRewindLong: "⏪ Вернуться",
	ActionLike:       "👍",
	ActionDislike:    "👎",
	ActionReport:     "✍️ Пожаловаться",
	ActionPrevPage:   "⬅️",
	ActionNextPage:   "➡️",

	ActionMyProfile:      "👤 Мой профиль",
	ActionSearchSettings: "🔎 Настройки поиска",
	ActionLanguage:       "🌐 Язык",
	ActionDeactivate:     "⛔️ Деактивировать",
	ActionDeleteAccount:  "❌ Удалить аккаунт",

	ActionEditName:      "✏️ Имя",
	ActionEditBirthDate: "🔢 Дата рождения",
	ActionEditGender:    "👫 Пол",
	ActionEditBio:       "📝 О себе",
	ActionEditLocation:  "📍 Локация",
	ActionEditMedia:     "📷 Медиа",
	ActionBack:          "⬅️ Назад",

	ActionGenderPrefs: "👩‍❤️‍👨 Предпочтения по полу",
	ActionAgePrefs:    "🔢 Предпочтения по возрасту",

	ActionSkip:         "Пропустить",
	ActionContinue:     "Продолжить",
	ActionSendLocation: "📍 Отправить локацию",
	ActionClear:        "❌ Очистить",

	ActionYes: "Да",
	ActionNo:  "Нет",

	ActionActivate:          "Активировать аккаунт",
	ActionStartRegistration: "Начать регистрацию",

	ActionGenderMale:   "Мужчина 👨",
	ActionGenderFemale: "Женщина 👩",
	ActionPreferWomen:  "Женщины 👩",
	ActionPreferMen:    "Мужчины 👨",

	ActionLangUz: "Uzbek 🇺🇿",
	ActionLangRu: "Russian 🇷🇺",
	ActionLangEn: "English 🇺🇸",
}

var messagesRU = map[string]string{
	MsgSelectLanguage:      "Привет! Выберите язык",
	MsgSelectLanguageRetry: "Выберите один из предложенных языков",
	MsgAskName:             "Как вас зовут?",
	MsgAskBirthDate: "Какая у вас дата рождения? Используйте один из форматов:" +
		"\n" +
		"\n👉 <b>YYYY-MM-DD</b> (Например, 2000-12-31)" +
		"\n👉 <b>DD.MM.YYYY</b> (Например, 31.12.2000)" +
		"\n👉 <b>MM/DD/YYYY</b> (Например, 12/31/2000)",
	MsgAskGender:        "Какой у вас пол?",
	MsgSelectOption:     "Выберите один из предложенных вариантов",
	MsgAskBio:           "Расскажите о себе. Какие у вас хобби, интересы и т.д.?",
	MsgAskPreferredSex:  "Кто вас интересует?",
	MsgAskAgeRange:      "Какой возрастной диапазон вас интересует? (например, 18-25)",
	MsgAskLocation:      "Отправьте свою геолокацию или введите название города",
	MsgAskLocationExact: "Отправьте свою геолокацию, нажав кнопку ниже",
	MsgCityPlaceholder:  "Название города",
	MsgAskMedia:         "Загрузите свои фото или видео (%d-%d)",

	MsgCityNotFound:     "Город не найден",
	MsgNoCitiesFound:    "По вашему запросу города не найдены.",
	MsgCitySearchError:  "Ошибка при поиске городов. Попробуйте ещё раз.",
	MsgSelectCity:       "Выберите ваш город",
	MsgPlaceError:       "Ошибка при получении информации о месте. Попробуйте ещё раз.",
	MsgLocationNotFound: "Локация не найдена. Попробуйте ещё раз.",
	MsgLocationError:    "Ошибка при обновлении локации. Попробуйте ещё раз.",

	MsgFileUploaded:     "Файл загружен",
	MsgFileUploadedMore: "Файл загружен. Загрузите ещё файлы, если хотите, или нажмите «Продолжить»",
	MsgUploadAtLeastOne: "Пожалуйста, загрузите хотя бы одно фото",
	MsgMediaInvalid:     "Недопустимые медиафайлы. Проверьте загруженные файлы.",
	MsgMediaTooLarge:    "Медиафайлы слишком большие. Используйте файлы меньшего размера.",
	MsgMediaUpdateError: "Ошибка при обновлении медиа. Попробуйте ещё раз.",

	MsgRegistrationError: "Произошла ошибка при регистрации аккаунта. Попробуйте позже или обратитесь в поддержку.",
	MsgRegistrationDone:  "Регистрация завершена!",
	MsgInvalidBirthDate:  "Неверная дата рождения",
	MsgBanned:            "Ваш аккаунт заблокирован. Обратитесь в поддержку.",
	MsgHelp: "Привет! Я бот, который поможет найти вашу вторую половинку.\n\n" +
		"Вот как это работает: вам будут показаны анкеты других пользователей, " +
		"и вы можете ставить им лайки или дизлайки. Когда вы лайкнете анкету, мы " +
		"уведомим пользователя об этом. Если пользователь лайкнет вас в ответ, " +
		"вы станете парой и сможете начать общение.\n\n" +
		"Если у вас есть вопросы, обратитесь в нашу " +
		"<a href='https://t.me/anormatchsupportbot'>службу поддержки</a>.",

	MsgMenu:           "Меню",
	MsgSettings:       "Настройки",
	MsgChooseLanguage: "Выберите язык",
	MsgReportReason:   "Какова причина жалобы на этого пользователя?",
	MsgReported:       "Жалоба на пользователя отправлена",
	MsgDeactivateAsk:  "Вы уверены, что хотите деактивировать аккаунт? Никто не увидит ваш аккаунт, даже пользователи, которым вы поставили лайк",
	MsgActivated:      "Ваш аккаунт активирован",
	MsgDeactivated:    "Ваш аккаунт деактивирован. Чтобы активировать его, нажмите кнопку ниже",
	MsgDeleteAsk:      "Вы уверены, что хотите удалить аккаунт? Все ваши данные будут потеряны",
	MsgDeleted:        "Ваш аккаунт удалён. Чтобы начать заново, нажмите кнопку ниже",

	MsgFetchError:      "Произошла ошибка при получении данных.",
	MsgNoCandidates:    "Сейчас больше некого показать.",
	MsgRewinding:       "⏪ Возвращаемся",
	MsgRewindLimit:     "Нельзя вернуться назад более %d раз",
	MsgNothingToRewind: "Больше некого вернуть",
	MsgUserNotFound:    "Пользователь не найден",
	MsgGenericError:    "Что-то пошло не так",

	MsgMatches:           "Пары",
	MsgLikes:             "Лайки",
	MsgMatchesFetchError: "Не удалось загрузить пары",
	MsgNoMatches:         "Пары не найдены",
	MsgMutualLike:        "Вы понравились друг другу. Начните чат, нажав кнопку ниже 👇",
	MsgStartChat:         "Начать чат",
	MsgNoLikes:           "Лайки не найдены",
	MsgDistanceKM:        "📍 %d км",

	MsgProfilePrompt:      "Нажмите кнопки ниже, чтобы обновить профиль",
	MsgProfileNotFound:    "Профиль пользователя не найден. Попробуйте ещё раз.",
	MsgProfileLoadError:   "Не удалось загрузить профиль. Попробуйте позже.",
	MsgEnterName:          "Введите ваше имя",
	MsgSelectGender:       "Выберите ваш пол",
	MsgAskBioUpdate:       "Расскажите о себе подробнее. Какие у вас хобби, интересы и т.д.?",
	MsgProfileUpdated:     "Ваш профиль обновлён",
	MsgSearchSettings:     "Настройки поиска",
	MsgPreferencesUpdated: "Настройки поиска обновлены",

	"Name must only contain letters and spaces":          "Имя может содержать только буквы и пробелы",
	"Name must be at least %d characters long":           "Имя должно содержать не менее %d символов",
	"Name must be less than %d characters long":          "Имя должно содержать менее %d символов",
	"You must be at least %d years old to use this bot":  "Для использования бота вам должно быть не менее %d лет",
	"You must be less than %d years old to use this bot": "Для использования бота вам должно быть менее %d лет",
	"Invalid date format. Supported formats are: \n" +
		"\n- YYYY-MM-DD (1970-10-20), " +
		"\n- DD.MM.YYYY (20.10.1970), " +
		"\n- MM/DD/YYYY (10/20/1970)": "Неверный формат даты. Поддерживаемые форматы: \n" +
		"\n- YYYY-MM-DD (1970-10-20), " +
		"\n- DD.MM.YYYY (20.10.1970), " +
		"\n- MM/DD/YYYY (10/20/1970)",
	"Bio must be less than %d characters long":          "Описание должно содержать менее %d символов",
	"Please upload at least %d media files":             "Пожалуйста, загрузите не менее %d медиафайлов",
	"You can upload up to %d media files":               "Можно загрузить не более %d медиафайлов",
	"Please enter a valid age range":                    "Пожалуйста, введите корректный возрастной диапазон",
	"Minimum age needs be to lower than maximum age":    "Минимальный возраст должен быть меньше максимального",
	"Age can't be lower than %d":                        "Возраст не может быть меньше %d",
	"Age can't be higher than %d":                       "Возраст не может быть больше %d",
	"Video duration can't be longer than %d seconds":    "Длительность видео не может превышать %d секунд",
	"Message text cannot be empty":                      "Текст сообщения не может быть пустым",
	"Message text must be less than %d characters long": "Текст сообщения должен содержать менее %d символов",
}
