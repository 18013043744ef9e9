package sqlinline

// Amounts are stored as numeric(12,2) and travel as integer cents.

const QInsertDonation = `--sql a81abf85-2b8f-4769-9a78-bde2d4886bf6
insert into donations(id, amount, frequency, project_id, first_name, last_name, email, message, stripe_payment_intent_id, status, created_at, updated_at)
values ($1::uuid, ($2::bigint / 100.0)::numeric(12,2), $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text, $10::text, now(), now())
returning created_at, updated_at;
`

const QListDonations = `--sql a9f20b27-7ef9-4fd1-b528-6a35d141b4ba
select id::text, (amount * 100)::bigint, frequency, project_id, first_name, last_name, email, message,
       stripe_payment_intent_id, stripe_invoice_id, status, created_at, updated_at
from donations
order by created_at desc
limit $1::int;
`

const QUpdateDonationStatus = `--sql 9380bfc8-6c82-4cd0-a480-346e93199689
update donations
set status = $2::text, updated_at = now()
where stripe_payment_intent_id = $1::text
  and status = 'pending';
`

const QInsertRecurringDonation = `--sql 6dae626c-ffab-4317-89bd-c4ec53bf6ad9
insert into donations(id, amount, frequency, project_id, first_name, last_name, email, message, stripe_payment_intent_id, stripe_invoice_id, status, created_at, updated_at)
values ($1::uuid, ($2::bigint / 100.0)::numeric(12,2), $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text, $10::text, $11::text, now(), now())
on conflict (stripe_invoice_id) where stripe_invoice_id is not null do nothing
returning created_at, updated_at;
`
