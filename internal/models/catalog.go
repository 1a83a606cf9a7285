package models

// RecitationCategory — раздел каталога текстов (id, имя). Имя уникально.
type RecitationCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecitationText — текст для сдачи наизусть. Поле Text хранится в
// канонической форме с книжными скобками 《…》 и уникально в каталоге.
// Записи учеников ссылаются на него по значению Text, а не по ID.
type RecitationText struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	CategoryID string `json:"categoryId"`
}

// DefaultPointCategory — категория по умолчанию для баллов без категории.
const DefaultPointCategory = "一般活动"

// DefaultPointCategories — стартовый набор категорий баллов.
var DefaultPointCategories = []string{
	"背诵",   // сдача наизусть
	"翻译",   // перевод
	"主题归纳", // обобщение темы
	"诗词鉴赏", // анализ поэзии
	"名著过关", // зачёт по классике
	"课堂小测", // проверочная на уроке
	"自定义",  // своя категория
}

// DefaultRecitationCategoryName — единственный раздел, создаваемый при
// первом запуске; в него же попадают тексты из старого формата хранения.
const DefaultRecitationCategoryName = "默认分类"

// DefaultRecitationTexts — стартовый набор текстов.
var DefaultRecitationTexts = []string{
	"《回延安》",
	"《桃花源记》",
	"《小石潭记》",
	"《关雎》",
	"《蒹葭》",
	"《式微》",
	"《子衿》",
	"《送杜少府之任蜀州》",
	"《望洞庭湖赠张丞相》",
}
