package seeds

import (
	"log"

	"github.com/fouad201/hydra-tech/models"
	"gorm.io/gorm"
)

// Run loads the bilingual sample content used by the marketing site.
// Idempotent: every record is get-or-create keyed on its natural key, so
// running it against a populated database changes nothing.
func Run(db *gorm.DB) error {
	log.Println("🌱 Seeding database...")

	services := []models.Service{
		{
			TitleEn:       "Smart Home",
			TitleAr:       "المنزل الذكي",
			DescriptionEn: "Explore innovative smart home solutions to enhance comfort, security, and energy efficiency with cutting-edge automation technology.",
			DescriptionAr: "اكتشف حلول المنزل الذكي المبتكرة لتعزيز الراحة والأمان وكفاءة الطاقة بتقنية الأتمتة المتطورة.",
			Icon:          "🏠",
			Order:         1,
		},
		{
			TitleEn:       "Automation Development",
			TitleAr:       "تطوير الأتمتة",
			DescriptionEn: "Operation, maintenance and development of water plants with advanced automation systems for optimal efficiency.",
			DescriptionAr: "تشغيل وصيانة وتطوير محطات المياه بأنظمة أتمتة متقدمة لتحقيق كفاءة مثالية.",
			Icon:          "⚙️",
			Order:         2,
		},
		{
			TitleEn:       "SCADA Systems",
			TitleAr:       "أنظمة سكادا",
			DescriptionEn: "Operation, maintenance and development of drainage stations with state-of-the-art SCADA monitoring and control systems.",
			DescriptionAr: "تشغيل وصيانة وتطوير محطات الصرف الصحي بأحدث أنظمة المراقبة والتحكم سكادا.",
			Icon:          "📊",
			Order:         3,
		},
	}
	for _, service := range services {
		if err := db.Where("title_en = ?", service.TitleEn).FirstOrCreate(&service).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d services", len(services))

	categories := []models.ProductCategory{
		{NameEn: "Automation", NameAr: "الأتمتة", Slug: "automation", Order: 1},
		{NameEn: "Electrical Components", NameAr: "المكونات الكهربائية", Slug: "electrical-components", Order: 2},
		{NameEn: "Low Voltage Panels", NameAr: "لوحات الجهد المنخفض", Slug: "low-voltage-panels", Order: 3},
		{NameEn: "Control Panels", NameAr: "لوحات التحكم", Slug: "control-panels", Order: 4},
		{NameEn: "Equipment & Machinery", NameAr: "المعدات والآلات", Slug: "equipment-machinery", Order: 5},
	}
	bySlug := make(map[string]uint, len(categories))
	for _, category := range categories {
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		bySlug[category.Slug] = category.ID
	}
	log.Printf("✅ Seeded %d product categories", len(categories))

	products := []models.Product{
		{
			CategoryID:    bySlug["low-voltage-panels"],
			NameEn:        "Panel Power for Low Voltage",
			NameAr:        "لوحة الطاقة للجهد المنخفض",
			DescriptionEn: "High-quality low voltage power distribution panels",
			DescriptionAr: "لوحات توزيع الطاقة ذات الجهد المنخفض عالية الجودة",
			IsFeatured:    true,
			Order:         1,
		},
		{
			CategoryID:    bySlug["electrical-components"],
			NameEn:        "Contactor",
			NameAr:        "كونتاكتور",
			DescriptionEn: "Industrial-grade contactors for reliable switching",
			DescriptionAr: "كونتاكتور صناعي للتبديل الموثوق",
			IsFeatured:    true,
			Order:         2,
		},
		{
			CategoryID:    bySlug["automation"],
			NameEn:        "PLC",
			NameAr:        "PLC",
			DescriptionEn: "Advanced programmable logic controllers",
			DescriptionAr: "وحدات تحكم منطقية قابلة للبرمجة متقدمة",
			IsFeatured:    true,
			Order:         3,
		},
	}
	for _, product := range products {
		if err := db.Where("name_en = ? AND category_id = ?", product.NameEn, product.CategoryID).
			FirstOrCreate(&product).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d products", len(products))

	courses := []models.Course{
		{
			TitleEn:       "PLC Basics",
			TitleAr:       "أساسيات PLC",
			DescriptionEn: "Master the fundamentals of Programmable Logic Controllers",
			DescriptionAr: "إتقان أساسيات وحدات التحكم المنطقية القابلة للبرمجة",
			Duration:      "4 weeks",
			Level:         models.CourseLevelBeginner,
			IsFeatured:    true,
			Icon:          "💻",
			Order:         1,
		},
		{
			TitleEn:       "Technology of Pumps & Compressors",
			TitleAr:       "تكنولوجيا المضخات والضواغط",
			DescriptionEn: "Comprehensive training on industrial pump and compressor systems",
			DescriptionAr: "تدريب شامل على أنظمة المضخات والضواغط الصناعية",
			Duration:      "6 weeks",
			Level:         models.CourseLevelIntermediate,
			IsFeatured:    true,
			Icon:          "⚡",
			Order:         2,
		},
		{
			TitleEn:       "Classic Control",
			TitleAr:       "التحكم الكلاسيكي",
			DescriptionEn: "Learn traditional control systems and their applications",
			DescriptionAr: "تعلم أنظمة التحكم التقليدية وتطبيقاتها",
			Duration:      "3 weeks",
			Level:         models.CourseLevelBeginner,
			IsFeatured:    true,
			Icon:          "🎛️",
			Order:         3,
		},
	}
	for _, course := range courses {
		if err := db.Where("title_en = ?", course.TitleEn).FirstOrCreate(&course).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d courses", len(courses))

	projects := []models.ThreeDPrintingProject{
		{
			TitleEn:       "Custom Industrial Parts",
			TitleAr:       "قطع صناعية مخصصة",
			DescriptionEn: "High-precision 3D printed industrial components and replacement parts",
			DescriptionAr: "مكونات صناعية مطبوعة ثلاثية الأبعاد عالية الدقة وقطع غيار",
			Material:      "ABS, Nylon",
			PrintTime:     "2-48 hours",
			IsFeatured:    true,
			Order:         1,
		},
		{
			TitleEn:       "Prototyping Services",
			TitleAr:       "خدمات النماذج الأولية",
			DescriptionEn: "Rapid prototyping for product development and testing",
			DescriptionAr: "نماذج أولية سريعة لتطوير المنتجات والاختبار",
			Material:      "PLA, PETG",
			PrintTime:     "1-24 hours",
			IsFeatured:    true,
			Order:         2,
		},
		{
			TitleEn:       "Custom Enclosures",
			TitleAr:       "غلافات مخصصة",
			DescriptionEn: "Tailored protective enclosures for electronic equipment",
			DescriptionAr: "غلافات واقية مخصصة للمعدات الإلكترونية",
			Material:      "ABS, PETG",
			PrintTime:     "3-12 hours",
			IsFeatured:    false,
			Order:         3,
		},
	}
	for _, project := range projects {
		if err := db.Where("title_en = ?", project.TitleEn).FirstOrCreate(&project).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seeded %d 3D printing projects", len(projects))

	settings, err := models.LoadSiteSettings(db)
	if err != nil {
		return err
	}
	settings.CompanyNameEn = "Hydra Tech"
	settings.CompanyNameAr = "هيدرا تك"
	settings.ShortAboutEn = "HYDRATECH provides high quality services, taking into consideration the time and cost factor and in line with the local market determinants. This is achieved through technical expertise of the management and employees of the company."
	settings.ShortAboutAr = "تقدم هيدراتك خدمات عالية الجودة، مع الأخذ في الاعتبار عامل الوقت والتكلفة وبما يتماشى مع محددات السوق المحلية. يتحقق ذلك من خلال الخبرة الفنية للإدارة والموظفين في الشركة."
	settings.AddressEn = "53 Gesr El Suez St. - Nozha - Heliopolis - Building 3 C - Second Floor - Apartment 203"
	settings.AddressAr = "53 شارع جسر السويس - نزهة - مصر الجديدة - مبنى 3 C - الطابق الثاني - شقة 203"
	settings.Email = "info@hydratech-eg.com"
	settings.Phone1 = "01227226502"
	settings.Phone2 = "0221922715"
	settings.FooterTextEn = "© Copyrights 2025. All Rights Reserved."
	settings.FooterTextAr = "© حقوق النشر 2025. جميع الحقوق محفوظة."
	if err := db.Save(&settings).Error; err != nil {
		return err
	}
	log.Println("✅ Seeded site settings")

	log.Println("🌱 Database seeding completed successfully!")
	return nil
}
