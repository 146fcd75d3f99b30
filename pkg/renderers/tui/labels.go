package tui

import "github.com/jateonwr/dem-survey/pkg/form"

var fieldLabels = map[string]string{
	form.AgencyName:      "ชื่อหน่วยงาน",
	form.SubUnit:         "หน่วยงานย่อย",
	form.ContactName:     "ชื่อผู้ประสานงาน",
	form.ContactPosition: "ตำแหน่ง",
	form.ContactPhone:    "เบอร์โทรศัพท์",
	form.ContactEmail:    "อีเมล",

	form.DemName:            "ชื่อชุดข้อมูล DEM",
	form.SourceType:         "แหล่งที่มาของข้อมูล",
	form.SourceOther:        "แหล่งที่มาอื่นๆ (ระบุ)",
	form.Year:               "ปีที่จัดทำ",
	form.CoverageCountry:    "ครอบคลุมทั่วประเทศ",
	form.BasinSelect:        "ลุ่มน้ำ",
	form.ProvinceSelect:     "จังหวัด",
	form.CoverageLocal:      "พื้นที่ระดับท้องถิ่น (ระบุ)",
	form.Resolution:         "ความละเอียด",
	form.ResolutionOther:    "ความละเอียด (ระบุ)",
	form.VerticalAccuracy:   "ความถูกต้องทางดิ่ง (ม.)",
	form.HorizontalAccuracy: "ความถูกต้องทางราบ (ม.)",
	form.VerticalDatum:      "พื้นหลักฐานทางดิ่ง",
	form.VerticalDatumOther: "พื้นหลักฐานทางดิ่งอื่นๆ (ระบุ)",
	form.CoordSys:           "ระบบพิกัด",
	form.CoordSysOther:      "ระบบพิกัดอื่นๆ (ระบุ)",
	form.DemMethodGroup:     "วิธีการจัดทำ DEM",
	form.DemMethodOther:     "วิธีการจัดทำอื่นๆ (ระบุ)",
	form.FormatGroup:        "รูปแบบไฟล์",
	form.FormatOther:        "รูปแบบไฟล์อื่นๆ (ระบุ)",
	form.FileSize:           "ขนาดไฟล์",
	form.FileSizeUnit:       "หน่วยขนาดไฟล์",
	form.License:            "สัญญาอนุญาต",
	form.LicenseOther:       "สัญญาอนุญาตอื่นๆ (ระบุ)",
	form.AccessGroup:        "ช่องทางการเข้าถึง",
	form.AccessOther:        "ช่องทางอื่นๆ (ระบุ)",
	form.QcGroup:            "การตรวจสอบคุณภาพ",
	form.QcOther:            "การตรวจสอบอื่นๆ (ระบุ)",
	form.UseGroup:           "การใช้งานหลัก",
	form.UseOther:           "การใช้งานอื่นๆ (ระบุ)",
	form.Remark:             "หมายเหตุ",
}

func labelFor(id string) string {
	if label, ok := fieldLabels[id]; ok {
		return label
	}
	return id
}
