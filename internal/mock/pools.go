package mock

const DefaultAvatar = "/avatars/default.png"

var names = []string{
	"张三", "李四", "王五", "赵六", "钱七", "孙八", "周九", "吴十", "郑一", "冯二",
	"陈三", "褚四", "卫五", "蒋六", "沈七", "韩八", "杨九", "朱十", "秦一", "尤二",
	"许三", "何四", "吕五", "施六", "张强", "李雷", "王刚", "赵云", "马超", "黄忠",
}

var positions = []string{"工程师", "技术员", "值班员", "调度员", "班长", "主管"}

var rooms = []string{"A101", "A203", "B110", "C305", "D210", "E402"}

var depts = []string{"运行部", "维护部", "安全部", "设备部"}

var shifts = []string{"白班", "中班", "夜班"}

var areas = []string{"主控楼", "汽机房", "锅炉房", "升压站", "化水车间", "输煤栈桥"}
