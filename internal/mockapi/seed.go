package mockapi

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/internal/store"
)

// seed writes demo data so a fresh mock backend is not empty. Runs once per
// backend; the initialization flag guards re-runs.
func (r *Router) seed() {
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("mockapi: failed to hash seed password: %v", err)
		return
	}

	var demoUser store.Record
	if users := r.store.Get(store.CollectionUsers, nil); len(users) == 0 {
		demoUser = r.store.Add(store.CollectionUsers, store.Record{
			"username":         "demouser",
			"email":            "demo@example.com",
			"password_hash":    string(hash),
			"profil_resmi_url": "",
			"cinsiyet":         "Erkek",
			"universite":       "Demo Üniversitesi",
			"kayit_tarihi":     now.Format(time.RFC3339),
		})
	} else {
		demoUser = users[0]
	}

	demoAuthor := authorOf(demoUser)
	demoID := demoUser.String("user_id")

	if forums := r.store.Get(store.CollectionForums, nil); len(forums) == 0 {
		forum := r.store.Add(store.CollectionForums, store.Record{
			"baslik":           "Go Hakkında Tartışma",
			"aciklama":         "Go öğrenirken karşılaştığınız zorluklar ve çözümler hakkında konuşalım.",
			"acilis_tarihi":    now.Format(time.RFC3339),
			"acan_kisi_id":     demoID,
			"acan_kisi":        demoAuthor,
			"foto_urls":        []string{},
			"yorum_ids":        []string{},
			"begeni_sayisi":    5,
			"begenmeme_sayisi": 1,
			"universite":       "Demo Üniversitesi",
			"kategori":         "Programlama",
		})
		r.store.Add(store.CollectionForums, store.Record{
			"baslik":           "Üniversite Hayatı",
			"aciklama":         "Üniversite hayatı hakkında deneyimlerimizi paylaşalım.",
			"acilis_tarihi":    now.Format(time.RFC3339),
			"acan_kisi_id":     demoID,
			"acan_kisi":        demoAuthor,
			"foto_urls":        []string{},
			"yorum_ids":        []string{},
			"begeni_sayisi":    3,
			"begenmeme_sayisi": 0,
			"universite":       "Demo Üniversitesi",
			"kategori":         "Üniversite",
		})

		if comments := r.store.Get(store.CollectionComments, nil); len(comments) == 0 {
			comment := r.store.Add(store.CollectionComments, store.Record{
				"forum_id":         forum.String("forum_id"),
				"acan_kisi_id":     demoID,
				"acan_kisi":        demoAuthor,
				"icerik":           "Bu konuda daha fazla bilgi paylaşabilir misiniz?",
				"acilis_tarihi":    now.Format(time.RFC3339),
				"foto_urls":        []string{},
				"begeni_sayisi":    2,
				"begenmeme_sayisi": 0,
				"ust_yorum_id":     "",
			})
			r.store.Update(store.CollectionForums, forum.String("forum_id"), store.Record{
				"yorum_ids": []string{comment.String("comment_id")},
			})
		}
	}

	if polls := r.store.Get(store.CollectionPolls, nil); len(polls) == 0 {
		r.store.Add(store.CollectionPolls, store.Record{
			"baslik":        "En Sevdiğiniz Programlama Dili?",
			"aciklama":      "Yazılım geliştirirken hangi dili kullanmayı tercih ediyorsunuz?",
			"acilis_tarihi": now.Format(time.RFC3339),
			"bitis_tarihi":  now.Add(7 * 24 * time.Hour).Format(time.RFC3339),
			"acan_kisi_id":  demoID,
			"acan_kisi":     demoAuthor,
			"secenekler": []store.Record{
				{"option_id": "1", "metin": "Go", "oy_sayisi": 5},
				{"option_id": "2", "metin": "Python", "oy_sayisi": 8},
				{"option_id": "3", "metin": "Java", "oy_sayisi": 3},
				{"option_id": "4", "metin": "C#", "oy_sayisi": 2},
			},
			"oylar":      map[string]string{},
			"universite": "Demo Üniversitesi",
			"kategori":   "Programlama",
		})
		r.store.Add(store.CollectionPolls, store.Record{
			"baslik":        "Uzaktan Eğitim mi, Yüz Yüze Eğitim mi?",
			"aciklama":      "Hangi eğitim modelini tercih edersiniz?",
			"acilis_tarihi": now.Format(time.RFC3339),
			"bitis_tarihi":  now.Add(3 * 24 * time.Hour).Format(time.RFC3339),
			"acan_kisi_id":  demoID,
			"acan_kisi":     demoAuthor,
			"secenekler": []store.Record{
				{"option_id": "1", "metin": "Uzaktan Eğitim", "oy_sayisi": 12},
				{"option_id": "2", "metin": "Yüz Yüze Eğitim", "oy_sayisi": 15},
				{"option_id": "3", "metin": "Hibrit Model", "oy_sayisi": 20},
			},
			"oylar":      map[string]string{},
			"universite": "Demo Üniversitesi",
			"kategori":   "Eğitim",
		})
	}

	if groups := r.store.Get(store.CollectionGroups, nil); len(groups) == 0 {
		r.store.Add(store.CollectionGroups, store.Record{
			"grup_adi":           "Yazılım Geliştirme Kulübü",
			"aciklama":           "Yazılım geliştirme hakkında bilgi paylaşımı yapabileceğimiz bir platform.",
			"olusturulma_tarihi": now.Format(time.RFC3339),
			"olusturan_id":       demoID,
			"logo_url":           "",
			"kapak_resmi_url":    "",
			"gizlilik":           model.PrivacyOpen,
			"kategoriler":        []string{"Programlama", "Teknoloji"},
			"uye_sayisi":         1,
			"uyeler": []store.Record{
				{
					"kullanici_id":     demoID,
					"rol":              model.RoleAdmin,
					"durum":            model.MemberActive,
					"username":         demoUser.String("username"),
					"profil_resmi_url": demoUser.String("profil_resmi_url"),
				},
			},
		})
	}

	r.session.MarkInitialized()
}
