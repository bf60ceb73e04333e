package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/artale-crew/boss-scheduler/backend/internal/config"
	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

func main() {
	/**********************************************
	 * 建立 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 載入設定
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("無法載入設定", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 建立郵件客戶端
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("無法建立郵件客戶端", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// 先確認郵件伺服器連得上
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("無法連線到郵件伺服器", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 連線 RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("無法連線到 RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// 建立通道
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("無法建立通道", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// 宣告佇列
	q, err := ch.QueueDeclare(
		"email_queue", // 佇列名稱
		true,          // 是否持久化
		false,         // 是否自動刪除，設為 false 可以避免沒有消費者時佇列被自動刪除
		false,         // 是否獨占
		false,         // 是否不等待 RabbitMQ 確認佇列建立成功
		nil,           // 額外參數
	)
	if err != nil {
		logger.Error("無法宣告佇列", slog.String("error", err.Error()))
		return
	}

	// 監聽 CTRL+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 消費訊息
	msgs, err := ch.Consume(
		q.Name, // 佇列
		"",     // 消費者標識，空字串表示由 RabbitMQ 自動分配
		false,  // 是否自動 ack
		false,  // 是否獨占佇列
		false,  // 是否禁止接收自己發送的訊息，RabbitMQ 不支援，必須為 false
		false,  // 是否不等待 RabbitMQ 回應
		nil,    // 額外參數
	)
	if err != nil {
		logger.Error("無法消費訊息", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 用於關閉 goroutine 的 context
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("收到訊息", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("郵件訊息反序列化失敗", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 組裝郵件
				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("無法設定郵件寄件人", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("無法設定郵件收件人", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 依郵件類型挑選模板
				switch mailMessage.Type {
				case "welcome":
					tmpl, err := template.ParseFiles("./templates/welcome_email.html")
					if err != nil {
						logger.Error("無法解析郵件模板", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("無法設定郵件內文", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Artale 打王排程 - 歡迎加入")
				case "match_digest":
					tmpl, err := template.ParseFiles("./templates/match_digest_email.html")
					if err != nil {
						logger.Error("無法解析郵件模板", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("無法設定郵件內文", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Artale 打王排程 - 本週配對摘要")
				default:
					logger.Error("不支援的郵件類型", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// 寄送郵件
				if err := client.DialAndSend(m); err != nil {
					logger.Error("郵件寄送失敗", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 讓訊息重新入列
					continue
				}

				// 確認訊息
				_ = msg.Ack(false)
			}
		}
	}()

	// 等待 CTRL+C 訊號
	logger.Info("等待訊息...（按 CTRL+C 離開）")
	<-sigChan

	// 優雅退出
	slog.Info("正在關閉 mail worker...")
	cancel()
	wg.Wait() // 等待所有 goroutine 結束
	slog.Info("mail worker 已成功關閉")
}
