package telegram

const commandsHint = "📌 /task — sayt orqali yaratilgan savollaringiz ro'yxati\n" +
	"📌 /course — kurslar menyusi\n" +
	"📌 /ai - RiseUp AI yordamchi\n" +
	"📌 /help — qo'llanma\n" +
	"💰 /hissa — RiseUp ga hissa qo'shing"

const siteHint = "Yangi savollar yaratish uchun yoki natijangizni bilish uchun riseuply.vercel.app saytiga kiring 😉"

const (
	msgAskEmail    = "Assalomu alaykum! 👋\nIltimos, riseuply.vercel.app website dagi emailingizni kiriting:"
	msgAskPassword = "Endi parolingizni kiriting:"
	msgAuthFailed  = "❌ Email yoki parol noto‘g‘ri!\n/start bilan qaytadan urinib ko‘ring."

	msgAlreadyLinked = "Assalomu alaykum, %s! 👋\n\n" +
		"Siz allaqachon akkauntingizni botga bog‘lab bo‘lgansiz ✅\n\n" +
		"Quyidagi buyruqlardan foydalanishingiz mumkin:\n" + commandsHint + "\n\n" + siteHint
	msgLinked = "✅ Akkauntingiz botga muvaffaqiyatli bog‘landi!\nXush kelibsiz, %s! 🎉\n\n" +
		commandsHint + "\n\n" + siteHint

	msgLoginFirst = "⛔ Avval akkauntingizni botga bog'lab oling.\n\n" +
		"Buning uchun:\n" +
		"1) /start buyrug'ini bosing\n" +
		"2) Email va parolni kiriting\n" +
		"3) Shundan keyin /task buyrug'i ishlaydi ✅"
	msgLoginFirstShort = "⛔ Avval /start orqali akkauntni bog'lab oling."
	msgNoSession       = "⛔ Sessiya topilmadi. /start orqali qayta kiring."
	msgSessionExpired  = "⛔ Sessiyangiz tugagan ko'rinadi.\nIltimos, /start orqali qaytadan login qiling."
	msgUnavailable     = "⚠️ Server bilan bog‘lanib bo‘lmadi. Birozdan so‘ng qayta urinib ko‘ring."

	msgTasksFailed   = "⚠️ Tasklarni olishda xatolik yuz berdi. Keyinroq qayta urinib ko‘ring."
	msgNoTasks       = "📭 Sizda hozircha birorta ham task yo'q.\n riseuply.vercel.app saytidan kirib hoziroq boshlang!"
	msgTasksHeader   = "📚 Sizda jami %d ta savollar mavjud.\n\nKo‘rmoqchi bo‘lgan savolingizni tanlang:"
	msgTaskFailed    = "⚠️ Bu taskni olishda xatolik yuz berdi."
	msgTaskReqFailed = "⚠️ Taskni olishda xatolik."
	msgBadTask       = "⚠️ Task topilmadi. /task bilan qayta urinib ko‘ring."
	msgMoreTasks     = "🔁 Yana savol ko‘rmoqchi bo‘lsangiz, /task yuboring."
	msgCancelled     = "❌ Javob berish bekor qilindi. Istasangiz /task bilan qayta tanlashingiz mumkin."

	msgAIUsage = "🧠 /ai dan keyin savolingizni yozing.\nMasalan: /ai Bugun kun qanday?"

	msgStatsOff = "📊 Natijalaringizni riseuply.vercel.app saytida kuzatib boring."
	msgStats    = "📊 Bot orqali natijalaringiz:\n\nJami javoblar: %d\n✅ To‘g‘ri: %d\n❌ Noto‘g‘ri: %d\n⏰ Oxirgi javob: %s"
	msgStatsErr = "⚠️ Statistikani olishda xatolik yuz berdi."

	msgUnknownCommand = "Noma'lum buyruq. /help — qo'llanma."

	msgDonate = "Salom, hurmatli foydalanuvchi! Sizning RiseUp loyihamizni rivojlantirishga bo'lgan qiziqishingiz uchun tashakkur 😊" +
		"Agar siz loyihamizga hissa qo'shishni xohlasangiz, quyidagi havola orqali buni amalga oshirishingiz mumkin 🔗\n" +
		"Sizning qo'llab-quvvatlashingiz biz uchun juda muhim va biz bundan juda minnatdormiz 🙏\n\n" +
		"Sizning hissangiz riseuply.vercel.app & @riseupuz_bot loyihamizni yanada yaxshilashga yordam beradi. Rahmat! 👇"
)

const msgHelp = `👋 RiseUp’ga xush kelibsiz!

Agar siz IT sohasida rivojlanishni, real skill olishni va
kelajagingizga sarmoya qilishni xohlasangiz —
RiseUp aynan siz uchun yaratilgan platforma 🚀

RiseUpda siz:
- faqat nazariya emas,
- balki amaliy tajriba,
- va real topshiriqlar orqali o‘rganasiz 💪

---

🔧 RiseUp’da nimalarni o‘rganasiz?

📌 Backend yo‘nalishi
- Python asoslari
- Django va Django Rest Framework (DRF)
- API bilan ishlash
- Backend mantiqi (real loyihalar asosida)

📌 Frontend boshlang‘ich
- HTML
- CSS
- JavaScript
- Sayt tuzilishi va dizayn asoslari

📌 Amaliy mashqlar
- Har bir mavzudan keyin task
- Bilimingizni darhol sinab ko‘rasiz

---

🧠 Tasklar bilan ishlash (asosiy qism)

RiseUp’da asosiy urg‘u — amaliyotga 💯

Saytda yaratilgan savollarni Telegram bot orqali ishlaysiz:

- /task — sizga berilgan savollar ro‘yxati
- Savolni tanlaysiz
- Javob berasiz
- Natijani darhol bilasiz ✅
- Har bir savol bo‘yicha izohlar va to‘g‘ri javoblar bilan tanishasiz
- O'z natijangizni websayt orqali ham kuzatib borasiz

👉 Xatolardan qo‘rqmang — aynan shunday o‘sasiz 😉

---

🤖 RiseUp AI — shaxsiy yordamchingiz

Biror joy tushunarsiz bo‘ldimi? Muammo emas 😊

RiseUp AI sizga yordam beradi:

- Murakkab mavzularni sodda qilib tushuntiradi
- Kodlarni izohlaydi
- Tarjima qiladi
- Ingliz tilini o‘rganishda yordam beradi
- IT yo‘nalishlar bo‘yicha maslahat beradi

📌 /ai — AI’ga savol berish
(Hozircha oddiy yordamchi, keyinchalik yanada kuchli bo‘ladi 🔥)

---

🎯 Qanday boshlash kerak?

Boshlash juda oson:

1. /start — akkauntingizni botga bog‘lang
2. /course — yo‘nalishni tanlang
3. O‘rganing va mashq qiling
4. /task — bilimni tekshiring
5. /ai — tushunmagan joyingizni so‘rang

---

🚀 RiseUp — bu shunchaki kurs emas

Bu:
- o‘zingizni rivojlantirish muhiti
- intizom
- va har kuni 1 qadam oldinga yurish

💙 O‘rganing • Amaliyot qiling • O‘sib boring
RiseUp bilan kelajagingizni bugundan boshlang!`

const (
	msgReplyTaskFailed = "⚠️ Savolni olishda xatolik yuz berdi."
	msgCourseMenu      = "Maroqli o'rganing😉"
	msgChooseLang      = "Kerakli tilni tanlang: "
)
