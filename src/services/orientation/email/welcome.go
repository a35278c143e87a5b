package email

import "fmt"

// WelcomeSubject หัวเมลต้อนรับหลังทำ orientation เสร็จ
const WelcomeSubject = "Welcome! Your orientation is complete"

// WelcomeHTML เนื้อเมลต้อนรับ (สั้น ๆ ไม่ใส่ข้อมูลอ่อนไหวลงเมล)
func WelcomeHTML(firstName string) string {
	name := firstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
		<div style="font-family:sans-serif">
			<h2>Welcome, %s 👋</h2>
			<p>Your orientation is complete. From now on you can check in to any
			meeting with just your email address.</p>
			<p>See you at the next meeting.</p>
		</div>`, name)
}
