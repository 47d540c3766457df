package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"inventory-backend/models"
	"inventory-backend/util/crypt_util"
)

const NotifyQueueName = "collector-notify"

type Config struct {
	Url string
}

type Connection struct {
	Config Config
	Conn   *amqp.Connection
}

func NewConnection(config Config) (Connection, error) {
	conn := Connection{Config: config}
	amqpConn, err := amqp.Dial(config.Url)
	if err != nil {
		return conn, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	conn.Conn = amqpConn
	return conn, nil
}

type Controller struct {
	Channel *amqp.Channel
	Queue   amqp.Queue
}

func NewCtrl() *Controller {
	return &Controller{}
}

func (ctrl *Controller) SetupChannelAndQueue(name string, amqpConn *amqp.Connection) error {
	ch, err := amqpConn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		name,
		false, // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}

	log.Printf("%s channel & queue declared", name)

	ctrl.Channel = ch
	ctrl.Queue = q
	return nil
}

func (ctrl *Controller) Close() {
	if ctrl.Channel != nil {
		ctrl.Channel.Close()
	}
}

// PublishMsg sends one message to the queue, RSA-encrypted when a keypair
// is configured.
func PublishMsg(ch *amqp.Channel, q amqp.Queue, msg models.Msg) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode msg: %w", err)
	}
	body, err := crypt_util.New().EncryptViaPrivate(jsonData)
	if err != nil {
		return fmt.Errorf("encrypt msg: %w", err)
	}

	err = ch.Publish(
		"",
		q.Name,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", q.Name, err)
	}
	return nil
}
