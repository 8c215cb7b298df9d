package worker

import (
	"encoding/json"
	"expertai.com/nlpy/rmq"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

const senderName = "nlpy"

type rmqClientWrapper struct {
	client *rmq.Client
}

func (wrapper *rmqClientWrapper) getDeliveriesCh() <-chan amqp.Delivery {
	return wrapper.client.Deliveries
}

func (wrapper *rmqClientWrapper) getReqChanErrorsCh() <-chan *amqp.Error {
	return wrapper.client.ReqChanErrors
}

func (wrapper *rmqClientWrapper) getRespChanErrorsCh() <-chan *amqp.Error {
	return wrapper.client.RespChanErrors
}

func (wrapper *rmqClientWrapper) pingSequencer(task *Task, message Message) error {
	message.Sender = senderName
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return wrapper.client.SendMessageToSequencer(amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (wrapper *rmqClientWrapper) acknowledgeDelivery(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

func (wrapper *rmqClientWrapper) rejectDelivery(delivery *amqp.Delivery, rejectLogger *zerolog.Logger) {
	if err := delivery.Reject(false); err != nil {
		rejectLogger.Err(err).Msg("Failed to reject delivery")
	}
}

func (wrapper *rmqClientWrapper) close() {
	wrapper.client.Close()
}
